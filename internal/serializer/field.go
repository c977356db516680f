package serializer

import "problemspec/internal/domain/model"

const (
	FieldTitle        = "title"
	FieldDescription  = "description"
	FieldDifficulty   = "difficulty"
	FieldFunctionName = "function_name"
	FieldParameters   = "parameters"
)

// Fields returns the top-level field names in render order.
func Fields() []string {
	return []string{FieldTitle, FieldDescription, FieldDifficulty, FieldFunctionName, FieldParameters}
}

// GetField reads one top-level field straight from p without rendering it.
// String fields come back as string, parameters as []model.Parameter.
func GetField(p *model.Problem, name string) (any, error) {
	if p == nil {
		return nil, ErrNilProblem
	}

	switch name {
	case FieldTitle:
		return p.Title(), nil
	case FieldDescription:
		return p.Description(), nil
	case FieldDifficulty:
		return string(p.Difficulty()), nil
	case FieldFunctionName:
		return p.FunctionName(), nil
	case FieldParameters:
		return p.Parameters(), nil
	default:
		return nil, &FieldNotFoundError{Name: name}
	}
}
