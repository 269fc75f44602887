package formatter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultFilePrefix names exported files otmlj-data_<timestamp>.json.
const DefaultFilePrefix = "otmlj-data"

const fileTimestampLayout = "2006-01-02_15-04-05"

// OutputFileName returns the file name for an export made at now.
func OutputFileName(prefix string, now time.Time) string {
	if prefix == "" {
		prefix = DefaultFilePrefix
	}
	return fmt.Sprintf("%s_%s.json", prefix, now.Format(fileTimestampLayout))
}

// WriteToDirectory writes data into dir, creating it if needed, and returns the
// file path. The content goes to a temporary file first so a failed write
// never leaves a partial document behind.
func WriteToDirectory(data []byte, dir, prefix string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	target := filepath.Join(dir, OutputFileName(prefix, now))
	tmp, err := os.CreateTemp(dir, ".otmlj-*.json.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("rename to %s: %w", target, err)
	}
	return target, nil
}
