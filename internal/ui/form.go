package ui

import (
	"os"
	"strings"

	"emperror.dev/errors"
	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// IsInteractive reports whether stdin is a terminal. Swapped out in tests.
var IsInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// AskBranchName is the function variable that can be reassigned for testing
var AskBranchName = askBranchName

func askBranchName() (string, error) {
	var name string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New branch name").
				Value(&name).
				Validate(validateBranchName),
		),
	).Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}

func validateBranchName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("branch name cannot be empty")
	}
	return nil
}
