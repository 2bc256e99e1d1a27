package cmd

import (
	"io"

	"emperror.dev/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/crazywolf132/newbranch/internal/branch"
	"github.com/crazywolf132/newbranch/internal/config"
	"github.com/crazywolf132/newbranch/internal/git"
	"github.com/crazywolf132/newbranch/internal/ui"
	"github.com/crazywolf132/newbranch/internal/version"
)

// Swapped out in tests.
var (
	newRunner = func(explain bool, out io.Writer) git.Runner {
		r := git.NewShellRunner("")
		r.Explain = explain
		r.ExplainOut = out
		return r
	}
	currentHead = func() (*git.Head, error) {
		return git.CurrentHead("")
	}
)

// NewRootCmd builds a fresh newbranch command.
func NewRootCmd() *cobra.Command {
	v := config.New()
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "newbranch <branch_name>",
		Short: "Check out a base branch, pull it and branch off it",
		Long: `newbranch runs, in order and stopping at the first failure:

  git checkout <checkout_branch>
  git pull
  git checkout -b <branch_name>

The base branch defaults to "dev". When -c is not given, the
NEWBRANCH_CHECKOUT_BRANCH environment variable or checkout_branch in the
config file replaces that default. Any -c value, even an empty one, is
passed to git unchanged.`,
		Example:       "  newbranch feature-x\n  newbranch feature-x -c release",
		Version:       version.Get(),
		Args:          branchNameArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configureLogging(cmd.ErrOrStderr(), v.GetBool(config.KeyDebug))
			if err := config.ReadFile(v, configFile); err != nil {
				ui.Warnf(cmd.ErrOrStderr(), "%v\n", err)
			}
			// the config file may have turned on debug
			configureLogging(cmd.ErrOrStderr(), v.GetBool(config.KeyDebug))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			name, err := resolveBranchName(args)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"branch":          name,
				"checkout_branch": cfg.CheckoutBranch,
			}).Debug("creating branch")

			creator := branch.New(newRunner(cfg.Explain, cmd.OutOrStdout()), cmd.OutOrStdout())
			creator.HeadFunc = currentHead
			return creator.Create(cmd.Context(), branch.Options{
				BranchName:     name,
				CheckoutBranch: cfg.CheckoutBranch,
			})
		},
	}

	flags := rootCmd.Flags()
	flags.StringP(config.KeyCheckoutBranch, "c", config.DefaultCheckoutBranch, "Name of the branch to checkout to and pull from")
	flags.Bool(config.KeyExplain, false, "Print each git command before running it")
	rootCmd.PersistentFlags().Bool(config.KeyDebug, false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default is $XDG_CONFIG_HOME/newbranch/config.yaml)")

	_ = v.BindPFlag(config.KeyCheckoutBranch, flags.Lookup(config.KeyCheckoutBranch))
	_ = v.BindPFlag(config.KeyExplain, flags.Lookup(config.KeyExplain))
	_ = v.BindPFlag(config.KeyDebug, rootCmd.PersistentFlags().Lookup(config.KeyDebug))

	rootCmd.SetUsageTemplate(ui.ColorHeadings(rootCmd.UsageTemplate()))
	return rootCmd
}

// branchNameArgs requires the branch name unless it can be prompted for.
func branchNameArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !ui.IsInteractive() {
		return errors.New("requires a branch_name argument")
	}
	return cobra.MaximumNArgs(1)(cmd, args)
}

func resolveBranchName(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	name, err := ui.AskBranchName()
	if err != nil {
		return "", errors.Wrap(err, "failed to read branch name")
	}
	return name, nil
}

// Execute is the root entrypoint
func Execute() error {
	return NewRootCmd().Execute()
}
