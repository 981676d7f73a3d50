// Package filex contains small filesystem helpers used by the client.
package filex

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
)

// MaxUploadSize bounds files read for upload (avatars, CVs, portfolios).
const MaxUploadSize = 10 << 20

var ErrTooLarge = errors.New("file too large")

// EnsureParentDir creates the directory that will hold path, if missing.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// ReadUpload reads a local file for upload and sniffs its content type.
func ReadUpload(path string) ([]byte, string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, "", fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return nil, "", fmt.Errorf("%s is a directory", path)
	}
	if fi.Size() > MaxUploadSize {
		return nil, "", fmt.Errorf("%s: %w", path, ErrTooLarge)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}
	return data, http.DetectContentType(data), nil
}
