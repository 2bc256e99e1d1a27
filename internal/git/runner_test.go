package git_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crazywolf132/newbranch/internal/git"
	"github.com/crazywolf132/newbranch/internal/testutil"
)

func TestShellRunner_Integration(t *testing.T) {
	repo := testutil.NewTrackedRepo(t, "dev")
	runner := repo.Runner()

	out, err := runner.Run(context.Background(), &git.RunOpts{
		Args:      []string{"branch", "--list", "--format=%(refname:short)"},
		ExitError: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, out.ExitCode)
	branches := strings.Fields(string(out.Stdout))
	assert.ElementsMatch(t, []string{"dev", "start"}, branches)
}

func TestShellRunner_CommandError(t *testing.T) {
	repo := testutil.NewTrackedRepo(t, "dev")
	runner := repo.Runner()

	out, err := runner.Run(context.Background(), &git.RunOpts{
		Args:      []string{"checkout", "does-not-exist"},
		ExitError: true,
	})
	require.Error(t, err)
	require.NotNil(t, out)
	assert.NotEqual(t, 0, out.ExitCode)

	cmdErr, ok := git.AsCommandError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"checkout", "does-not-exist"}, cmdErr.Args)
	assert.Equal(t, "git checkout does-not-exist", cmdErr.Command())
	assert.Contains(t, cmdErr.Detail(), "does-not-exist")
	assert.Contains(t, err.Error(), "command 'git checkout does-not-exist' returned non-zero exit status")
}

func TestShellRunner_NonZeroWithoutExitError(t *testing.T) {
	repo := testutil.NewTrackedRepo(t, "dev")
	runner := repo.Runner()

	out, err := runner.Run(context.Background(), &git.RunOpts{
		Args: []string{"show-ref", "--verify", "--quiet", "refs/heads/nope"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.ExitCode)
}

func TestShellRunner_Explain(t *testing.T) {
	repo := testutil.NewTrackedRepo(t, "dev")
	var explained bytes.Buffer
	runner := repo.Runner()
	runner.Explain = true
	runner.ExplainOut = &explained

	_, err := runner.Run(context.Background(), &git.RunOpts{Args: []string{"status", "--porcelain"}})
	require.NoError(t, err)
	assert.Equal(t, "[explain] Running: git status --porcelain\n", explained.String())
}

func TestCommandError(t *testing.T) {
	tests := []struct {
		name string
		err  *git.CommandError
		want string
	}{
		{
			name: "stderr detail",
			err:  &git.CommandError{Args: []string{"pull"}, ExitCode: 1, Stderr: "fatal: no upstream\n"},
			want: "command 'git pull' returned non-zero exit status 1: fatal: no upstream",
		},
		{
			name: "falls back to stdout",
			err:  &git.CommandError{Args: []string{"pull"}, ExitCode: 128, Stdout: "conflict\n"},
			want: "command 'git pull' returned non-zero exit status 128: conflict",
		},
		{
			name: "no output",
			err:  &git.CommandError{Args: []string{"checkout", "dev"}, ExitCode: 1},
			want: "command 'git checkout dev' returned non-zero exit status 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.want)
		})
	}
}

func TestCurrentHead(t *testing.T) {
	repo := testutil.NewTrackedRepo(t, "dev")

	head, err := git.CurrentHead(repo.Dir)
	require.NoError(t, err)
	assert.Equal(t, "start", head.Branch)
	assert.Equal(t, repo.Rev(t, "HEAD"), head.Hash)
	assert.Len(t, head.ShortHash(), 7)
}

func TestOpenRepo_NotARepo(t *testing.T) {
	_, err := git.OpenRepo(t.TempDir())
	assert.Error(t, err)
}
