// Package codegen generates per-language solution stubs for a problem.
//
// Parameter and return types are written as canonical C++ types and mapped
// to each target language through a fixed table.
package codegen

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"problemspec/internal/domain/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

type stubData struct {
	FunctionName string
	ReturnType   string
	Params       []model.Parameter
	Signature    string
	Doc          []string
}

// Generate renders the solution stub for def in lang.
func Generate(def *model.Definition, lang Language) (model.Document, error) {
	if def == nil || def.Problem == nil {
		return model.Document{}, fmt.Errorf("generate %s: nil definition", lang)
	}
	if _, ok := extensions[lang]; !ok {
		return model.Document{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}

	p := def.Problem
	params := p.Parameters()
	mapped := make([]model.Parameter, 0, len(params))
	for _, param := range params {
		t, err := MapType(param.Type, lang)
		if err != nil {
			return model.Document{}, fmt.Errorf("parameter %s: %w", param.Name, err)
		}
		mapped = append(mapped, model.Parameter{Name: param.Name, Type: t})
	}

	returnType := voidTypes[lang]
	if def.ReturnType != "" {
		t, err := MapType(def.ReturnType, lang)
		if err != nil {
			return model.Document{}, fmt.Errorf("return type: %w", err)
		}
		returnType = t
	}

	data := stubData{
		FunctionName: p.FunctionName(),
		ReturnType:   returnType,
		Params:       mapped,
		Signature:    signature(mapped, lang),
		Doc:          docLines(p),
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, string(lang)+".tmpl", data); err != nil {
		return model.Document{}, fmt.Errorf("execute %s template: %w", lang, err)
	}

	return model.Document{
		Name:     fmt.Sprintf("%s_solution.%s", p.FunctionName(), lang.Extension()),
		Language: string(lang),
		Content:  buf.String(),
	}, nil
}

func signature(params []model.Parameter, lang Language) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		switch lang {
		case LanguagePython:
			parts = append(parts, p.Name+": "+p.Type)
		case LanguageJavaScript:
			parts = append(parts, p.Name)
		default:
			parts = append(parts, p.Type+" "+p.Name)
		}
	}
	return strings.Join(parts, ", ")
}

// docLines builds the stub's leading comment: title, a blank line, then the
// description. Comment terminators are broken up so they cannot close the block.
func docLines(p *model.Problem) []string {
	var lines []string
	if title := strings.TrimSpace(p.Title()); title != "" {
		lines = append(lines, title)
	}
	desc := strings.TrimSpace(p.Description())
	if desc == "" {
		return sanitize(lines)
	}
	if len(lines) > 0 {
		lines = append(lines, "")
	}
	for _, line := range strings.Split(desc, "\n") {
		lines = append(lines, strings.TrimRight(line, " \t\r"))
	}
	return sanitize(lines)
}

func sanitize(lines []string) []string {
	r := strings.NewReplacer("*/", "* /", `"""`, `\"\"\"`)
	for i, l := range lines {
		lines[i] = r.Replace(l)
	}
	return lines
}
