package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidateDirectory checks that path exists and is a directory.
func ValidateDirectory(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%s: %w", path, ErrPathNotExist)
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrExpectedDirectory)
	}
	return nil
}

// PathsOverlap reports whether one path equals or contains the other once
// both are made absolute.
func PathsOverlap(path1, path2 string) bool {
	abs1, err := filepath.Abs(path1)
	if err != nil {
		abs1 = filepath.Clean(path1)
	}
	abs2, err := filepath.Abs(path2)
	if err != nil {
		abs2 = filepath.Clean(path2)
	}
	return isWithin(abs1, abs2) || isWithin(abs2, abs1)
}

func isWithin(path, parent string) bool {
	if path == parent {
		return true
	}
	return strings.HasPrefix(path, strings.TrimSuffix(parent, string(filepath.Separator))+string(filepath.Separator))
}
