package ingest

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// DirSource walks a filesystem tree rooted at Root and yields the relative
// path of every entry below it, directories included.
type DirSource struct {
	Root string
}

// Name identifies the source as a directory walk.
func (s *DirSource) Name() string {
	return "dir"
}

// EachPath walks the tree and emits each entry's path segments relative to
// the root.
func (s *DirSource) EachPath(ctx context.Context, emit func(segments []string) error) error {
	walkErr := filepath.WalkDir(s.Root, func(path string, _ fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		rel, relErr := filepath.Rel(s.Root, path)
		if relErr != nil {
			return relErr
		}

		if rel == "." {
			return nil // The root itself maps to the pool root.
		}

		return emit(strings.Split(filepath.ToSlash(rel), "/"))
	})
	if walkErr != nil {
		return fmt.Errorf("walk %s: %w", s.Root, walkErr)
	}

	return nil
}
