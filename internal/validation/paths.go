// Package validation provides validation for user-supplied file paths,
// preventing path traversal and writes into sensitive system locations.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// restrictedPrefixes are locations wordsift refuses to write into.
var restrictedPrefixes = []string{
	"/etc/",
	"/proc/",
	"/sys/",
	"/dev/",
	"/boot/",
}

// ValidatePath validates a file path to prevent path traversal attacks
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path cannot be empty")
	}

	// Clean the path to resolve any . or .. components
	cleanPath := filepath.Clean(path)

	// Check for path traversal attempts
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal detected: %s", path)
	}

	if strings.ContainsRune(path, '\x00') {
		return fmt.Errorf("path contains null byte")
	}

	return nil
}

// ValidateInputPath validates the word-list source path. The file itself
// is not required to exist here; a missing file surfaces as an I/O error
// at open time, which is the fatal path the tool specifies.
func ValidateInputPath(path string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("input path is a directory: %s", path)
	}

	return nil
}

// ValidateOutputPath validates the destination path, rejecting writes
// into restricted system locations.
func ValidateOutputPath(path string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}

	cleanPath := filepath.Clean(path)
	cleanPathLower := strings.ToLower(cleanPath)
	for _, restricted := range restrictedPrefixes {
		if strings.HasPrefix(cleanPathLower, restricted) {
			return fmt.Errorf("output path in restricted location: %s", path)
		}
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("output path is a directory: %s", path)
	}

	return nil
}
