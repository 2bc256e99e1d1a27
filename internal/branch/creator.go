// Package branch checks out a base branch, pulls it and branches off it.
package branch

import (
	"context"
	"fmt"
	"io"
	"strings"

	"emperror.dev/errors"
	"github.com/crazywolf132/fstr"
	"github.com/sirupsen/logrus"

	"github.com/crazywolf132/newbranch/internal/git"
	"github.com/crazywolf132/newbranch/internal/ui"
)

// Step is a single git invocation and the confirmation printed once it
// succeeds.
type Step struct {
	Args        []string
	Description string
}

func (s Step) Command() string {
	return "git " + strings.Join(s.Args, " ")
}

// Plan returns the steps that create branchName on top of checkoutBranch,
// in the order they must run.
func Plan(branchName, checkoutBranch string) []Step {
	return []Step{
		{
			Args:        []string{"checkout", checkoutBranch},
			Description: fstr.F("Checked out '{}'", checkoutBranch),
		},
		{
			Args:        []string{"pull"},
			Description: "Pulled latest changes",
		},
		{
			Args:        []string{"checkout", "-b", branchName},
			Description: fstr.F("Created & switched to '{}'", branchName),
		},
	}
}

type Options struct {
	BranchName string
	// CheckoutBranch is handed to git as given; git rejects bad names.
	CheckoutBranch string
}

type Creator struct {
	runner git.Runner
	out    io.Writer

	// HeadFunc, when set, is used to print where the new branch points.
	// Its errors are logged and otherwise ignored.
	HeadFunc func() (*git.Head, error)
}

func New(runner git.Runner, out io.Writer) *Creator {
	return &Creator{
		runner: runner,
		out:    out,
	}
}

// Create runs the plan and stops at the first failing command. Nothing is
// rolled back on failure.
func (c *Creator) Create(ctx context.Context, opts Options) error {
	if strings.TrimSpace(opts.BranchName) == "" {
		return errors.New("branch name cannot be empty")
	}
	for _, step := range Plan(opts.BranchName, opts.CheckoutBranch) {
		if err := c.execute(ctx, step); err != nil {
			return err
		}
	}

	fmt.Fprintln(c.out, ui.Sage("Operation completed successfully!"))
	c.reportHead()
	return nil
}

func (c *Creator) execute(ctx context.Context, step Step) error {
	_, err := c.runner.Run(ctx, &git.RunOpts{
		Args:      step.Args,
		ExitError: true,
	})
	if err != nil {
		logrus.WithError(err).WithField("command", step.Command()).Debug("step failed, aborting")
		return err
	}
	ui.Success(c.out, step.Description+" "+ui.Gray("("+step.Command()+")"))
	return nil
}

func (c *Creator) reportHead() {
	if c.HeadFunc == nil {
		return
	}
	head, err := c.HeadFunc()
	if err != nil {
		logrus.WithError(err).Debug("could not read new branch head")
		return
	}
	fmt.Fprintf(c.out, "   %s @ %s\n", head.Branch, head.ShortHash())
}
