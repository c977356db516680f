package source

import (
	"context"
	"fmt"
	"os"

	"problemspec/internal/domain/model"
	"problemspec/internal/domain/ports"
	"problemspec/internal/serializer"
)

// File loads a problem definition from a JSON or YAML file. The format is
// picked from the file extension.
type File struct {
	path   string
	logger ports.Logger
}

var _ ports.ProblemSource = (*File)(nil)

// NewFile creates a file-backed source.
func NewFile(path string, logger ports.Logger) *File {
	return &File{path: path, logger: logger}
}

// Load reads and validates the file. It is re-read on every call.
func (f *File) Load(ctx context.Context) (*model.Definition, error) {
	format, err := serializer.FormatForPath(f.path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read problem file: %w", err)
	}

	def, err := serializer.Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", f.path, err)
	}
	def.Source = f.path

	if f.logger != nil {
		f.logger.Debug(ctx, "problem file loaded", "path", f.path, "format", format, "parameters", def.Problem.ParamCount())
	}
	return def, nil
}
