package dump

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func fakeTool(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755)
	require.NoError(t, err)
	return path
}

func TestDiscoverDumper(t *testing.T) {
	dir := t.TempDir()
	want := fakeTool(t, dir, "llvm-dwarfdump-13")
	t.Setenv("PATH", dir)

	got, err := DiscoverDumper()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestDiscoverDumperUnversionedFirst(t *testing.T) {
	dir := t.TempDir()
	want := fakeTool(t, dir, "llvm-dwarfdump")
	fakeTool(t, dir, "llvm-dwarfdump-12")
	t.Setenv("PATH", dir)

	got, err := DiscoverDumper()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestDiscoverDumperExtraWins(t *testing.T) {
	dir := t.TempDir()
	want := fakeTool(t, dir, "my-dwarfdump")
	fakeTool(t, dir, "llvm-dwarfdump")
	t.Setenv("PATH", dir)

	got, err := DiscoverDumper("my-dwarfdump")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestDiscoverDumperUnavailable(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := DiscoverDumper()
	require.Error(t, err)

	var unavailable *ErrToolUnavailable
	require.True(t, errors.As(err, &unavailable))
	require.Contains(t, unavailable.Candidates, "llvm-dwarfdump")
}
