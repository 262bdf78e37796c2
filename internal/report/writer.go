package report

import (
	"fmt"
	"log/slog"
	"os"
)

// Writer persists a finished report to disk.
type Writer struct {
	Path string
}

func NewWriter(path string) *Writer {
	return &Writer{Path: path}
}

// Write stores text verbatim at the configured path, replacing any
// previous report there.
func (w *Writer) Write(text string) error {
	if err := os.WriteFile(w.Path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", w.Path, err)
	}
	slog.Info("report written", "path", w.Path, "bytes", len(text))
	return nil
}
