package fsys

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetAbs returns the absolute form of path. Absolute paths pass through
// unchanged.
func GetAbs(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("fsys: abs %q: %w", path, err)
	}
	return abs, nil
}

// Exists reports whether path exists on the OS filesystem. A missing path
// is not an error.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, fmt.Errorf("fsys: stat %q: %w", path, err)
	}
}
