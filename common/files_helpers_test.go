package common

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirectoryExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureDirectoryExists(dir))
	assert.True(t, DirectoryExists(dir))
	require.NoError(t, EnsureDirectoryExists(dir))

	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	assert.Error(t, EnsureDirectoryExists(file))
	assert.True(t, FileExists(file))
	assert.False(t, FileExists(dir))

	assert.Error(t, EnsureDirectoryExists("  "))
}

func TestAppDataDir(t *testing.T) {
	assert.Equal(t, filepath.Join("/base", AppName), AppDataDir(func() (string, error) { return "/base", nil }))
	assert.Equal(t, "", AppDataDir(func() (string, error) { return "", errors.New("no home") }))
}

func TestDefaultLogPathEndsWithLogFile(t *testing.T) {
	assert.Equal(t, FileNameLog, filepath.Base(DefaultLogPath()))
}
