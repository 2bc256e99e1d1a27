package git

import (
	"strconv"
	"strings"

	"emperror.dev/errors"
	"github.com/crazywolf132/fstr"
)

// CommandError is returned when a git command exits with a non-zero status.
type CommandError struct {
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

// Command returns the failing command line, e.g. "git checkout dev".
func (e *CommandError) Command() string {
	return strings.TrimSpace("git " + strings.Join(e.Args, " "))
}

func (e *CommandError) Error() string {
	msg := fstr.F("command '{}' returned non-zero exit status {}", e.Command(), strconv.Itoa(e.ExitCode))
	if detail := e.Detail(); detail != "" {
		msg += ": " + detail
	}
	return msg
}

// Detail is the captured error text, falling back to stdout when git
// wrote nothing to stderr.
func (e *CommandError) Detail() string {
	if s := strings.TrimSpace(e.Stderr); s != "" {
		return s
	}
	return strings.TrimSpace(e.Stdout)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// AsCommandError reports whether err wraps a *CommandError.
func AsCommandError(err error) (*CommandError, bool) {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr, true
	}
	return nil, false
}
