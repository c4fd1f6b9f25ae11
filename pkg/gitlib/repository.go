// Package gitlib is a thin wrapper over libgit2 exposing what pathfang
// needs from a repository: opening it and enumerating the file paths of
// its HEAD tree.
package gitlib

import (
	"fmt"

	git2go "github.com/libgit2/git2go/v34"
)

// Repository wraps a libgit2 repository handle.
type Repository struct {
	repo *git2go.Repository
	path string
}

// OpenRepository opens the git repository at path.
func OpenRepository(path string) (*Repository, error) {
	repo, err := git2go.OpenRepository(path)
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	return &Repository{repo: repo, path: path}, nil
}

// Path returns the path the repository was opened from.
func (r *Repository) Path() string {
	return r.path
}

// Free releases the libgit2 handle. The repository must not be used after.
func (r *Repository) Free() {
	if r.repo != nil {
		r.repo.Free()
		r.repo = nil
	}
}

// HeadTree resolves HEAD to its commit and returns that commit's tree.
func (r *Repository) HeadTree() (*Tree, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}
	defer ref.Free()

	commit, err := r.repo.LookupCommit(ref.Target())
	if err != nil {
		return nil, fmt.Errorf("lookup HEAD commit: %w", err)
	}
	defer commit.Free()

	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("lookup HEAD tree: %w", err)
	}

	return &Tree{tree: tree, repo: r}, nil
}
