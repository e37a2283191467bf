package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	logFormatConsole = "console"
	logFormatJSON    = "json"
)

func validateDocumentPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("design document is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve document path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("design document does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("document path %s is a directory", abs)
	}

	return nil
}

func validateLogFormat(format string) error {
	switch format {
	case logFormatConsole, logFormatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported log format %q (want %s or %s)", format, logFormatConsole, logFormatJSON)
	}
}
