package gitsource

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

func commitFile(t *testing.T, repo *git.Repository, dir, rel, contents string) {
	t.Helper()

	full := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(contents), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add(filepath.ToSlash(rel))
	require.NoError(t, err)
	_, err = wt.Commit("update "+rel, &git.CommitOptions{
		Author: &object.Signature{Name: "Tester", Email: "tester@example.com", When: time.Now()},
	})
	require.NoError(t, err)
}

func TestReadCommittedReturnsHeadContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	commitFile(t, repo, dir, "lib/texts.dart", "committed\n")

	// Working tree changes are not visible at HEAD.
	path := filepath.Join(dir, "lib", "texts.dart")
	require.NoError(t, os.WriteFile(path, []byte("edited\n"), 0o644))

	data, err := ReadCommitted(path, "")
	require.NoError(t, err)
	require.Equal(t, "committed\n", string(data))
}

func TestReadCommittedOlderRevision(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	commitFile(t, repo, dir, "texts.dart", "v1\n")
	commitFile(t, repo, dir, "texts.dart", "v2\n")

	data, err := ReadCommitted(filepath.Join(dir, "texts.dart"), "HEAD~1")
	require.NoError(t, err)
	require.Equal(t, "v1\n", string(data))
}

func TestReadCommittedMissingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	commitFile(t, repo, dir, "other.dart", "x")

	_, err = ReadCommitted(filepath.Join(dir, "texts.dart"), DefaultRevision)
	require.ErrorIs(t, err, ErrNotCommitted)
}

func TestReadCommittedOutsideRepository(t *testing.T) {
	t.Parallel()

	_, err := ReadCommitted(filepath.Join(t.TempDir(), "texts.dart"), "")
	require.Error(t, err)
}

func TestReadCommittedDotPrefixedRootFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	commitFile(t, repo, dir, "..texts.dart", "dotted\n")

	data, err := ReadCommitted(filepath.Join(dir, "..texts.dart"), "")
	require.NoError(t, err)
	require.Equal(t, "dotted\n", string(data))
}
