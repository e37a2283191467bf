package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"

	fberrors "github.com/alexisbeaulieu97/flutterbuild/pkg/errors"
)

func TestCheckPassesWhenUpToDate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	docPath := writeSampleDocument(t, dir)
	outPath := filepath.Join(dir, "texts.dart")

	_, _, err := executeCommand(t, "make", "-c", docPath, "-o", outPath)
	require.NoError(t, err)

	out, _, err := executeCommand(t, "check", "-c", docPath, "-o", outPath)
	require.NoError(t, err)
	require.Contains(t, out, "is up to date")
}

func TestCheckReportsDrift(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	docPath := writeSampleDocument(t, dir)
	outPath := filepath.Join(dir, "texts.dart")
	require.NoError(t, os.WriteFile(outPath, []byte("stale\n"), 0o644))

	out, _, err := executeCommand(t, "check", "-c", docPath, "-o", outPath)

	var drift *fberrors.DriftError
	require.ErrorAs(t, err, &drift)
	require.Equal(t, 1, exitCode(err))
	require.Contains(t, out, "-stale")
	require.Contains(t, out, `+        Text("plain"),`)
}

func TestCheckMissingOutputIsDrift(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	docPath := writeSampleDocument(t, dir)

	_, _, err := executeCommand(t, "check", "-c", docPath, "-o", filepath.Join(dir, "absent.dart"))

	var drift *fberrors.DriftError
	require.ErrorAs(t, err, &drift)
}

func TestCheckAgainstCommittedRevision(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	docPath := writeSampleDocument(t, dir)
	outPath := filepath.Join(dir, "texts.dart")

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	_, _, err = executeCommand(t, "make", "-c", docPath, "-o", outPath)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("texts.dart")
	require.NoError(t, err)
	_, err = wt.Commit("generate texts", &git.CommitOptions{
		Author: &object.Signature{Name: "Tester", Email: "tester@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	// A local edit does not matter when comparing against HEAD.
	require.NoError(t, os.WriteFile(outPath, []byte("edited\n"), 0o644))

	out, _, err := executeCommand(t, "check", "-c", docPath, "-o", outPath, "--rev", "HEAD")
	require.NoError(t, err)
	require.Contains(t, out, "texts.dart@HEAD is up to date")

	_, _, err = executeCommand(t, "check", "-c", docPath, "-o", outPath)
	require.Error(t, err)
}

func TestExitCodeForOtherErrors(t *testing.T) {
	t.Parallel()

	require.Equal(t, 2, exitCode(fberrors.NewParseError("x", 0, nil)))
}
