package codegen

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownType indicates a parameter or return type with no mapping.
	ErrUnknownType = errors.New("unknown type")
	// ErrUnknownLanguage indicates a language with no boilerplate support.
	ErrUnknownLanguage = errors.New("unknown language")
)

// Language identifies a boilerplate target.
type Language string

const (
	LanguageC          Language = "c"
	LanguageCPP        Language = "cpp"
	LanguagePython     Language = "python"
	LanguageJavaScript Language = "javascript"
	LanguageJava       Language = "java"
)

var extensions = map[Language]string{
	LanguageC:          "c",
	LanguageCPP:        "cpp",
	LanguagePython:     "py",
	LanguageJavaScript: "js",
	LanguageJava:       "java",
}

// Languages returns every supported language in a fixed order.
func Languages() []Language {
	return []Language{LanguageC, LanguageCPP, LanguagePython, LanguageJavaScript, LanguageJava}
}

// Extension returns the source file extension for l.
func (l Language) Extension() string { return extensions[l] }

// ParseLanguage resolves a language name or common alias.
func ParseLanguage(name string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "c", "gcc":
		return LanguageC, nil
	case "cpp", "c++":
		return LanguageCPP, nil
	case "python", "py":
		return LanguagePython, nil
	case "javascript", "js", "node":
		return LanguageJavaScript, nil
	case "java":
		return LanguageJava, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
	}
}

// typeRow holds the spelling of one C++ type in every non-C++ target.
type typeRow struct {
	c, python, javascript, java string
}

// cppTypes is keyed by the canonical C++ spelling.
var cppTypes = map[string]typeRow{
	"int":                          {c: "int", python: "int", javascript: "number", java: "int"},
	"long":                         {c: "long", python: "int", javascript: "number", java: "long"},
	"long long":                    {c: "long long", python: "int", javascript: "bigint", java: "long"},
	"unsigned int":                 {c: "unsigned int", python: "int", javascript: "number", java: "int"},
	"float":                        {c: "float", python: "float", javascript: "number", java: "float"},
	"double":                       {c: "double", python: "float", javascript: "number", java: "double"},
	"long double":                  {c: "long double", python: "float", javascript: "number", java: "double"},
	"char":                         {c: "char", python: "str", javascript: "string", java: "char"},
	"bool":                         {c: "bool", python: "bool", javascript: "boolean", java: "boolean"},
	"std::string":                  {c: "char*", python: "str", javascript: "string", java: "String"},
	"std::vector<int>":             {c: "int*", python: "list[int]", javascript: "number[]", java: "List<Integer>"},
	"std::vector<double>":          {c: "double*", python: "list[float]", javascript: "number[]", java: "List<Double>"},
	"std::vector<std::string>":     {c: "char**", python: "list[str]", javascript: "string[]", java: "List<String>"},
	"std::map<std::string,int>":    {c: "struct", python: "dict[str, int]", javascript: "Record<string, number>", java: "Map<String, Integer>"},
	"std::map<std::string,double>": {c: "struct", python: "dict[str, float]", javascript: "Record<string, number>", java: "Map<String, Double>"},
	"std::pair<int,int>":           {c: "struct { int first; int second; }", python: "tuple[int, int]", javascript: "[number, number]", java: "Pair<Integer, Integer>"},
}

// voidTypes is used when a definition carries no return type.
var voidTypes = map[Language]string{
	LanguageC:          "void",
	LanguageCPP:        "void",
	LanguagePython:     "None",
	LanguageJavaScript: "void",
	LanguageJava:       "void",
}

// aliases maps Java and LeetCode spellings onto the canonical C++ key.
var aliases = map[string]string{
	"Integer":             "int",
	"Long":                "long",
	"Double":              "double",
	"Boolean":             "bool",
	"Character":           "char",
	"String":              "std::string",
	"int[]":               "std::vector<int>",
	"double[]":            "std::vector<double>",
	"String[]":            "std::vector<std::string>",
	"List<Integer>":       "std::vector<int>",
	"List<Double>":        "std::vector<double>",
	"List<String>":        "std::vector<std::string>",
	"Map<String,Integer>": "std::map<std::string,int>",
	"Map<String,Double>":  "std::map<std::string,double>",
}

// MapType translates a canonical C++ type into its spelling for lang. Common
// Java spellings such as List<Integer> are accepted as well.
func MapType(cppType string, lang Language) (string, error) {
	key := normalizeType(cppType)
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	row, ok := cppTypes[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownType, cppType)
	}

	switch lang {
	case LanguageCPP:
		return key, nil
	case LanguageC:
		return row.c, nil
	case LanguagePython:
		return row.python, nil
	case LanguageJavaScript:
		return row.javascript, nil
	case LanguageJava:
		return row.java, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
}

// normalizeType collapses runs of spaces and drops spaces around template
// punctuation, so "std::map<std::string, int>" matches the table key.
func normalizeType(t string) string {
	t = strings.Join(strings.Fields(t), " ")
	for _, punct := range []string{"<", ">", ","} {
		t = strings.ReplaceAll(t, " "+punct, punct)
		t = strings.ReplaceAll(t, punct+" ", punct)
	}
	return t
}
