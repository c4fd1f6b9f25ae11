package ingest

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sumatoshi-tech/pathfang/pkg/gitlib"
)

// GitSource yields the path of every file in the HEAD tree of a git
// repository. The working tree state is irrelevant; only committed paths
// are seen.
type GitSource struct {
	Path string
}

// Name identifies the source as a git tree walk.
func (s *GitSource) Name() string {
	return "git"
}

// EachPath opens the repository, walks its HEAD tree, and emits each blob
// path's segments.
func (s *GitSource) EachPath(ctx context.Context, emit func(segments []string) error) error {
	repo, err := gitlib.OpenRepository(s.Path)
	if err != nil {
		return fmt.Errorf("git source: %w", err)
	}
	defer repo.Free()

	tree, err := repo.HeadTree()
	if err != nil {
		return fmt.Errorf("git source: %w", err)
	}
	defer tree.Free()

	walkErr := tree.EachFile(func(path string) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		return emit(strings.Split(path, "/"))
	})
	if walkErr != nil {
		return fmt.Errorf("git source: %w", walkErr)
	}

	return nil
}
