package gitlib

import (
	"fmt"

	git2go "github.com/libgit2/git2go/v34"
)

// Tree wraps a libgit2 tree.
type Tree struct {
	tree *git2go.Tree
	repo *Repository
}

// Free releases the tree resources.
func (t *Tree) Free() {
	if t.tree != nil {
		t.tree.Free()
		t.tree = nil
	}
}

// EachFile calls fn with the repository-relative path of every blob reachable
// from the tree, in tree order. Entries that cannot be looked up are skipped.
func (t *Tree) EachFile(fn func(path string) error) error {
	return t.repo.walkTree(t.tree, "", fn)
}

func (r *Repository) walkTree(tree *git2go.Tree, prefix string, fn func(path string) error) error {
	count := tree.EntryCount()

	for i := range count {
		entry := tree.EntryByIndex(i)
		if entry == nil {
			continue
		}

		entryErr := r.walkTreeEntry(entry, prefix, fn)
		if entryErr != nil {
			return entryErr
		}
	}

	return nil
}

func (r *Repository) walkTreeEntry(entry *git2go.TreeEntry, prefix string, fn func(path string) error) error {
	path := entry.Name
	if prefix != "" {
		path = prefix + "/" + path
	}

	switch entry.Type {
	case git2go.ObjectBlob:
		fnErr := fn(path)
		if fnErr != nil {
			return fmt.Errorf("visit %s: %w", path, fnErr)
		}

		return nil
	case git2go.ObjectTree:
		subtree, lookupErr := r.repo.LookupTree(entry.Id)
		if lookupErr != nil {
			return nil // Skip entries we can't look up.
		}
		defer subtree.Free()

		return r.walkTree(subtree, path, fn)
	default:
		return nil
	}
}
