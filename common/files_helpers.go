// common/files_helpers.go

package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IsEmptyString reports whether s is empty or only whitespace
func IsEmptyString(s string) bool {
	return strings.TrimSpace(s) == ""
}

// FileExists checks if a file exists
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists ensures the specified directory exists
func EnsureDirectoryExists(path string) error {
	if IsEmptyString(path) {
		return fmt.Errorf("path cannot be empty")
	}

	if DirectoryExists(path) {
		return nil
	}
	if FileExists(path) {
		return fmt.Errorf("'%s' exists and is not a directory", path)
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", path, err)
	}
	return nil
}

// JoinPaths joins path elements into a single path
func JoinPaths(elements ...string) string {
	return filepath.Join(elements...)
}

// AppDataDir returns <base>/EchoDemo for the given per-user base directory lookup,
// or "" when the base directory cannot be determined.
func AppDataDir(base func() (string, error)) string {
	dir, err := base()
	if err != nil || IsEmptyString(dir) {
		return ""
	}
	return JoinPaths(dir, AppName)
}

// DefaultLogPath returns the log file location used when the configuration names none.
func DefaultLogPath() string {
	if dir := AppDataDir(os.UserCacheDir); dir != "" {
		return JoinPaths(dir, FolderNameLog, FileNameLog)
	}
	return JoinPaths(".", FileNameLog)
}
