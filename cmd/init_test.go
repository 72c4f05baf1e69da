package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearOutputDir(t *testing.T) {
	target := filepath.Join(t.TempDir(), "site")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "src"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "src", "main.tsx"), []byte("x"), 0644))

	require.NoError(t, clearOutputDir(target))
	assert.NoDirExists(t, target)
}

func TestClearOutputDirPropagatesFailure(t *testing.T) {
	target := filepath.Join(t.TempDir(), "site")
	locked := filepath.Join(target, "locked")
	require.NoError(t, os.MkdirAll(locked, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(locked, "keep"), []byte("x"), 0644))
	require.NoError(t, os.Chmod(locked, 0555))
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	err := clearOutputDir(target)
	if err == nil {
		// Privileged users bypass the permission check.
		t.Skip("removal succeeded despite read-only directory")
	}
	assert.ErrorContains(t, err, "failed to remove existing directory")
}
