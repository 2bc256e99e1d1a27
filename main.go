package main

import (
	"fmt"
	"os"

	"github.com/crazywolf132/newbranch/cmd"
	"github.com/crazywolf132/newbranch/internal/ui"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorLine(err))
		os.Exit(1)
	}
}
