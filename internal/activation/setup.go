package activation

import (
	"fmt"
	"os"
	"path/filepath"
)

// For mocking in tests
var (
	osChdir = os.Chdir
	osGetwd = os.Getwd
)

// ensureDir creates path if it does not exist yet. An existing directory is
// left alone.
func ensureDir(path string) error {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return DirectoryCreationFailure(path, fmt.Errorf("%s exists and is not a directory", path))
	case !os.IsNotExist(err):
		return DirectoryCreationFailure(path, err)
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		return DirectoryCreationFailure(path, err)
	}
	return nil
}

// EnsureProjectDirs makes sure the activation project and its required
// subdirectory exist. Safe to call repeatedly.
func EnsureProjectDirs(projectPath, subdir string) error {
	if err := ensureDir(projectPath); err != nil {
		return err
	}
	if subdir == "" {
		return nil
	}
	return ensureDir(filepath.Join(projectPath, subdir))
}

// enterDir switches the process working directory to path. The returned
// function switches back to the previous directory.
func enterDir(path string) (func() error, error) {
	original, err := osGetwd()
	if err != nil {
		return nil, DirectoryCreationFailure(path, fmt.Errorf("failed to determine working directory: %w", err))
	}
	if err := osChdir(path); err != nil {
		return nil, DirectoryCreationFailure(path, err)
	}
	return func() error {
		return osChdir(original)
	}, nil
}
