package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/crazywolf132/termchroma"
)

var (
	green  string = ""
	red    string = ""
	yellow string = ""
	gray   string = ""
	white  string = ""
	sage   string = ""

	bold  string = termchroma.Bold
	reset string = termchroma.Reset
)

// Colors
func Green(s string) string  { return green + s + reset }
func Red(s string) string    { return red + s + reset }
func Yellow(s string) string { return yellow + s + reset }
func Gray(s string) string   { return gray + s + reset }
func Sage(s string) string   { return sage + s + reset }
func Bold(s string) string   { return bold + s + reset }

// Success writes a green check mark followed by msg.
func Success(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", Green("✓"), msg)
}

func Warnf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, Yellow("Warning: ")+format, args...)
}

// ErrorLine formats err the way the CLI reports fatal failures.
func ErrorLine(err error) string {
	return Red("Error: ") + err.Error()
}

func ColorHeadings(text string) string {
	headings := []string{
		"Usage:",
		"Examples:",
		"Available Commands:",
		"Flags:",
		"Aliases:",
		"Additional Commands:",
	}

	for _, heading := range headings {
		text = strings.ReplaceAll(text, heading, fmt.Sprintf("%s%s%s%s", sage, bold, heading, reset))
	}

	text = strings.ReplaceAll(text, "{{.CommandPath}}", fmt.Sprintf("%s%s%s", white, "{{.CommandPath}}", reset))

	return text
}

func init() {
	sage, _ = termchroma.ANSIForeground("#8EA58C")
	yellow, _ = termchroma.ANSIForeground("#FFC402")
	red, _ = termchroma.ANSIForeground("#FF707E")
	white, _ = termchroma.ANSIForeground("#FFF")
	gray, _ = termchroma.ANSIForeground("#6B737C")
	green, _ = termchroma.ANSIForeground("#98C379")
}
