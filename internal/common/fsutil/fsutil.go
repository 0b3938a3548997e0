package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome expands a leading '~' to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	// ~/artifacts/columns.json
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}

// PathExists checks if the given path exists.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, os.ErrNotExist)
}

// Compression suffixes recognized on artifact names.
const (
	CompressionNone = ""
	CompressionZstd = ".zst"
	CompressionLZ4  = ".lz4"
)

// SplitCompression strips a trailing .zst or .lz4 suffix and reports which one
// was found. The remaining name keeps its own extension, so
// "model.json.zst" yields ("model.json", ".zst").
func SplitCompression(name string) (string, string) {
	lower := strings.ToLower(name)
	for _, suffix := range []string{CompressionZstd, CompressionLZ4} {
		if strings.HasSuffix(lower, suffix) {
			return name[:len(name)-len(suffix)], suffix
		}
	}
	return name, CompressionNone
}

// Ext returns the lower-cased extension of name after compression suffixes
// are removed.
func Ext(name string) string {
	base, _ := SplitCompression(name)
	return strings.ToLower(filepath.Ext(base))
}
