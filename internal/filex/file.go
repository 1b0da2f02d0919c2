// Package filex holds small filesystem helpers shared by the store and the
// export engine.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir (and any missing parents) if it does not exist yet.
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// EnsureParentDir creates the directory that would contain path. Useful
// before opening a database file or writing an export artifact at a
// user-supplied location.
func EnsureParentDir(path string) error {
	return EnsureDir(filepath.Dir(path))
}
