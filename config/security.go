package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	maxFileSize = 10 << 20 // 10MB
	maxPathLen  = 4096
)

// SafeReadFile reads a configuration or catalogue file after checking its
// path, extension, type and size. allowedExts are matched case-insensitively;
// none means any extension.
func SafeReadFile(path string, allowedExts ...string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("empty file path")
	}
	if len(path) > maxPathLen {
		return nil, fmt.Errorf("path too long: %d > %d", len(path), maxPathLen)
	}

	if len(allowedExts) > 0 {
		ext := strings.ToLower(filepath.Ext(path))
		if !contains(allowedExts, ext) {
			return nil, fmt.Errorf("unsupported file extension %q for %s (allowed: %s)",
				ext, path, strings.Join(allowedExts, ", "))
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot stat file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("not a regular file: %s", path)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("file too large: %d bytes > %d", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("cannot read file: %w", err)
	}
	return data, nil
}
