// Package filex holds small filesystem helpers shared by the entrypoint.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir makes sure the directory exists and returns its absolute path.
// Relative paths are resolved against the working directory, so the JSON
// stores land next to wherever the program was started.
func EnsureDir(dirName string) (string, error) {
	dir := dirName
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dirName)
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}
