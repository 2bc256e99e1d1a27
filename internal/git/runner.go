package git

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"emperror.dev/errors"
	"github.com/sirupsen/logrus"
)

// Runner executes git commands.
type Runner interface {
	Run(ctx context.Context, opts *RunOpts) (*Output, error)
}

type RunOpts struct {
	Args []string

	// Return a *CommandError if the command exits with a non-zero exit code.
	ExitError bool
}

type Output struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// ShellRunner runs the git binary found on PATH.
type ShellRunner struct {
	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Env is appended to the inherited environment of every command.
	Env []string

	// Explain echoes every command to ExplainOut before running it.
	Explain    bool
	ExplainOut io.Writer
}

func NewShellRunner(dir string) *ShellRunner {
	return &ShellRunner{
		Dir:        dir,
		ExplainOut: os.Stdout,
	}
}

func (r *ShellRunner) Run(ctx context.Context, opts *RunOpts) (*Output, error) {
	if r.Explain && r.ExplainOut != nil {
		fmt.Fprintf(r.ExplainOut, "[explain] Running: git %s\n", strings.Join(opts.Args, " "))
	}

	cmd := exec.CommandContext(ctx, "git", opts.Args...)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Env = append(os.Environ(), r.Env...)

	logrus.WithField("args", opts.Args).Debug("running git")
	err := cmd.Run()
	var exitError *exec.ExitError
	if err != nil && !errors.As(err, &exitError) {
		return nil, errors.Wrapf(err, "git %s", strings.Join(opts.Args, " "))
	}

	out := &Output{
		ExitCode: cmd.ProcessState.ExitCode(),
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
	}
	if exitError != nil && opts.ExitError {
		logrus.WithFields(logrus.Fields{
			"args":      opts.Args,
			"exit_code": out.ExitCode,
			"stderr":    strings.TrimSpace(stderr.String()),
		}).Debug("git command failed")
		return out, &CommandError{
			Args:     opts.Args,
			ExitCode: out.ExitCode,
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
			Err:      exitError,
		}
	}
	return out, nil
}
