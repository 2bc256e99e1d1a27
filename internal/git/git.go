package git

import (
	"emperror.dev/errors"
	"github.com/go-git/go-git/v5"
)

type Repo struct {
	gitRepo *git.Repository
}

// OpenRepo opens the working copy containing dir.
func OpenRepo(dir string) (*Repo, error) {
	if dir == "" {
		dir = "."
	}
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open git repo")
	}
	return &Repo{gitRepo: repo}, nil
}

// Head describes what HEAD points at.
type Head struct {
	// Branch is empty when HEAD is detached.
	Branch string
	Hash   string
}

func (h Head) ShortHash() string {
	if len(h.Hash) < 7 {
		return h.Hash
	}
	return h.Hash[:7]
}

// Head reads HEAD from disk on every call.
func (r *Repo) Head() (*Head, error) {
	ref, err := r.gitRepo.Head()
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve HEAD")
	}
	head := &Head{Hash: ref.Hash().String()}
	if ref.Name().IsBranch() {
		head.Branch = ref.Name().Short()
	}
	return head, nil
}

// CurrentHead opens the repository at dir and returns its HEAD.
func CurrentHead(dir string) (*Head, error) {
	repo, err := OpenRepo(dir)
	if err != nil {
		return nil, err
	}
	return repo.Head()
}
