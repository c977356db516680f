// Package serializer turns problems into stable indented text and back.
//
// Output is deterministic: top-level keys always appear as title,
// description, difficulty, function_name, parameters, and parameters keep
// their declaration order.
package serializer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"problemspec/internal/domain/model"
)

// Format selects the textual representation.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const (
	minYAMLIndent = 2
	maxYAMLIndent = 9
)

// ParseFormat resolves a user supplied format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", &ConfigurationError{Option: "format", Reason: fmt.Sprintf("%q is not supported", name)}
	}
}

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", &ConfigurationError{Option: "format", Reason: fmt.Sprintf("cannot infer from %q", path)}
	}
	return ParseFormat(ext)
}

// Extension returns the file extension used for documents in this format.
func (f Format) Extension() string {
	return string(f)
}

// Options controls Encode.
type Options struct {
	Format Format
	// Indent is the number of spaces per nesting level.
	Indent int
}

// problemDoc is the wire shape of a problem. Field order here is the render order.
type problemDoc struct {
	Title        string            `json:"title" yaml:"title"`
	Description  string            `json:"description" yaml:"description"`
	Difficulty   string            `json:"difficulty" yaml:"difficulty"`
	FunctionName string            `json:"function_name" yaml:"function_name"`
	Parameters   []model.Parameter `json:"parameters" yaml:"parameters"`
	ReturnType   string            `json:"return_type,omitempty" yaml:"return_type,omitempty"`
}

func toDoc(p *model.Problem) problemDoc {
	return problemDoc{
		Title:        p.Title(),
		Description:  p.Description(),
		Difficulty:   string(p.Difficulty()),
		FunctionName: p.FunctionName(),
		Parameters:   p.Parameters(),
	}
}

// Render produces the JSON form of p indented by indentWidth spaces per level.
// An indent of zero yields the compact single-line form.
func Render(p *model.Problem, indentWidth int) (string, error) {
	return Encode(p, Options{Format: FormatJSON, Indent: indentWidth})
}

// Validate reports options that Encode would reject.
func (o Options) Validate() error {
	if o.Indent < 0 {
		return &ConfigurationError{Option: "indent", Reason: fmt.Sprintf("must not be negative, got %d", o.Indent)}
	}

	switch o.Format {
	case FormatJSON, "":
		return nil
	case FormatYAML:
		if o.Indent < minYAMLIndent || o.Indent > maxYAMLIndent {
			return &ConfigurationError{
				Option: "indent",
				Reason: fmt.Sprintf("must be between %d and %d for yaml, got %d", minYAMLIndent, maxYAMLIndent, o.Indent),
			}
		}
		return nil
	default:
		return &ConfigurationError{Option: "format", Reason: fmt.Sprintf("%q is not supported", o.Format)}
	}
}

// Encode produces the textual form of p in the requested format.
func Encode(p *model.Problem, opts Options) (string, error) {
	if p == nil {
		return "", ErrNilProblem
	}
	if err := opts.Validate(); err != nil {
		return "", err
	}

	if opts.Format == FormatYAML {
		return encodeYAML(toDoc(p), opts.Indent)
	}
	return encodeJSON(toDoc(p), opts.Indent)
}

func encodeJSON(doc problemDoc, indent int) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func encodeYAML(doc problemDoc, indent int) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("flush yaml: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Decode parses a problem document and builds a validated Definition from it.
// Unknown keys and anything after the first document are rejected.
func Decode(data []byte, format Format) (*model.Definition, error) {
	var doc problemDoc

	switch format {
	case FormatJSON, "":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode json: unexpected data after problem document")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		var extra yaml.Node
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: unexpected data after problem document")
		}
	default:
		return nil, &ConfigurationError{Option: "format", Reason: fmt.Sprintf("%q is not supported", format)}
	}

	problem, err := model.NewProblem(doc.Title, doc.Description, model.Difficulty(doc.Difficulty), doc.FunctionName, doc.Parameters)
	if err != nil {
		return nil, err
	}

	return &model.Definition{
		Problem:    problem,
		ReturnType: strings.TrimSpace(doc.ReturnType),
	}, nil
}
