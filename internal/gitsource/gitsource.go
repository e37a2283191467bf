// Package gitsource reads previously generated files as they were committed.
package gitsource

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// DefaultRevision is used when no revision is given.
const DefaultRevision = "HEAD"

// ErrNotCommitted is returned when the file does not exist at the revision.
var ErrNotCommitted = errors.New("file is not committed at revision")

// ReadCommitted returns the content of path at rev in the repository that
// contains path. path may be absent from the working tree.
func ReadCommitted(path, rev string) ([]byte, error) {
	if strings.TrimSpace(rev) == "" {
		rev = DefaultRevision
	}

	abs, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(abs), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository for %s: %w", path, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}
	root, err := resolvePath(wt.Filesystem.Root())
	if err != nil {
		return nil, err
	}

	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("%s is outside repository %s", path, root)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("resolve revision %s: %w", rev, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("load commit %s: %w", hash, err)
	}

	file, err := commit.File(filepath.ToSlash(rel))
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return nil, fmt.Errorf("%s at %s: %w", rel, rev, ErrNotCommitted)
		}
		return nil, fmt.Errorf("read %s at %s: %w", rel, rev, err)
	}

	contents, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("read %s at %s: %w", rel, rev, err)
	}

	return []byte(contents), nil
}

// resolvePath makes path absolute and resolves symlinks in its directory so
// it can be compared against the repository root.
func resolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %s: %w", path, err)
	}
	dir, err := filepath.EvalSymlinks(filepath.Dir(abs))
	if err != nil {
		return abs, nil
	}
	return filepath.Join(dir, filepath.Base(abs)), nil
}
