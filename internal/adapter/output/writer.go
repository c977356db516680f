package output

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"problemspec/internal/domain/model"
	"problemspec/internal/domain/ports"
)

// Writer publishes documents to a stream, or to files in a directory when dir is set.
type Writer struct {
	out    io.Writer
	dir    string
	logger ports.Logger
}

var _ ports.Publisher = (*Writer)(nil)

// NewStream writes every document's content to w followed by a newline.
func NewStream(w io.Writer, logger ports.Logger) *Writer {
	return &Writer{out: w, logger: logger}
}

// NewDir writes each document to dir/<doc.Name>, creating dir if needed.
func NewDir(dir string, logger ports.Logger) *Writer {
	return &Writer{dir: dir, logger: logger}
}

// Publish writes doc.
func (w *Writer) Publish(ctx context.Context, doc model.Document) error {
	if w.dir == "" {
		if _, err := io.WriteString(w.out, ensureNewline(doc.Content)); err != nil {
			return fmt.Errorf("write %s: %w", doc.Name, err)
		}
		return nil
	}

	name := filepath.Base(doc.Name)
	if name == "." || name == string(filepath.Separator) || name != doc.Name {
		return fmt.Errorf("invalid document name %q", doc.Name)
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, []byte(ensureNewline(doc.Content)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	if w.logger != nil {
		w.logger.Info(ctx, "document written", "path", path, "bytes", len(doc.Content))
	}
	return nil
}

func ensureNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
