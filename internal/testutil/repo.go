// Package testutil builds throwaway git repositories for tests.
package testutil

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crazywolf132/newbranch/internal/git"
)

// Repo is a working copy whose base branch tracks a bare remote.
type Repo struct {
	Dir       string
	RemoteDir string
	Base      string
}

// NewTrackedRepo creates a bare remote and a working copy with base pushed
// upstream. The working copy is left on a branch named "start".
func NewTrackedRepo(t testing.TB, base string) *Repo {
	t.Helper()

	root := t.TempDir()
	r := &Repo{
		Dir:       filepath.Join(root, "work"),
		RemoteDir: filepath.Join(root, "remote.git"),
		Base:      base,
	}

	Git(t, root, "init", "--bare", r.RemoteDir)
	Git(t, root, "init", "--initial-branch="+base, r.Dir)
	configureUser(t, r.Dir)
	Git(t, r.Dir, "commit", "--allow-empty", "-m", "Initial commit")
	Git(t, r.Dir, "remote", "add", "origin", r.RemoteDir)
	Git(t, r.Dir, "push", "-u", "origin", base)
	Git(t, r.Dir, "checkout", "-b", "start")

	return r
}

// AdvanceRemote pushes a new commit on the base branch from a second clone
// and returns its hash.
func (r *Repo) AdvanceRemote(t testing.TB, message string) string {
	t.Helper()

	other := filepath.Join(t.TempDir(), "other")
	Git(t, filepath.Dir(other), "clone", "--branch", r.Base, r.RemoteDir, other)
	configureUser(t, other)
	Git(t, other, "commit", "--allow-empty", "-m", message)
	Git(t, other, "push", "origin", r.Base)
	return Git(t, other, "rev-parse", "HEAD")
}

func (r *Repo) CurrentBranch(t testing.TB) string {
	t.Helper()
	return Git(t, r.Dir, "rev-parse", "--abbrev-ref", "HEAD")
}

func (r *Repo) Rev(t testing.TB, ref string) string {
	t.Helper()
	return Git(t, r.Dir, "rev-parse", ref)
}

// Env keeps git away from the user's global and system config.
func Env() []string {
	return []string{"GIT_CONFIG_GLOBAL=" + os.DevNull, "GIT_CONFIG_NOSYSTEM=1"}
}

// Runner returns a git.ShellRunner for the working copy, isolated like the
// fixture commands.
func (r *Repo) Runner() *git.ShellRunner {
	runner := git.NewShellRunner(r.Dir)
	runner.Env = Env()
	return runner
}

// Git runs git in dir and returns trimmed stdout, failing the test on error.
func Git(t testing.TB, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), Env()...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	require.NoError(t, err, "git %s: %s", strings.Join(args, " "), stderr.String())
	return strings.TrimSpace(string(out))
}

func configureUser(t testing.TB, dir string) {
	t.Helper()
	Git(t, dir, "config", "user.name", "Test User")
	Git(t, dir, "config", "user.email", "test@example.com")
	Git(t, dir, "config", "commit.gpgsign", "false")
}
