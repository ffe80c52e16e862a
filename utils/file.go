package utils

import (
	"os"
	"path/filepath"
)

// EnsureExportDir creates the exports directory if it doesn't exist
func EnsureExportDir() error {
	return os.MkdirAll("exports", os.ModePerm)
}

// WriteExportFile writes a report into the exports directory and returns its
// path. Fallback destination when R2 is not configured.
func WriteExportFile(filename string, data []byte) (string, error) {
	path := filepath.Join("exports", filename)
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
