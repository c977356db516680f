package model

import "slices"

// Difficulty labels how hard a problem is. The known levels are easy, medium
// and hard, but any label is accepted.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Known reports whether d is one of the standard difficulty levels.
func (d Difficulty) Known() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// Parameter is one named, typed input of a problem's function signature.
type Parameter struct {
	Name string `json:"name" yaml:"name" validate:"required"`
	Type string `json:"type" yaml:"type" validate:"required"`
}

// Problem describes a programming exercise. It is immutable once built by
// NewProblem, so it can be shared between goroutines freely.
type Problem struct {
	title        string
	description  string
	difficulty   Difficulty
	functionName string
	parameters   []Parameter
}

// NewProblem validates the given fields and returns a fully formed Problem.
// Parameter order is kept exactly as given.
func NewProblem(title, description string, difficulty Difficulty, functionName string, params []Parameter) (*Problem, error) {
	fields := problemFields{
		FunctionName: functionName,
		Parameters:   params,
	}
	if err := fields.validate(); err != nil {
		return nil, err
	}

	return &Problem{
		title:        title,
		description:  description,
		difficulty:   difficulty,
		functionName: functionName,
		parameters:   slices.Clone(params),
	}, nil
}

func (p *Problem) Title() string          { return p.title }
func (p *Problem) Description() string    { return p.description }
func (p *Problem) Difficulty() Difficulty { return p.difficulty }
func (p *Problem) FunctionName() string   { return p.functionName }

// Parameters returns a copy of the parameter list in declaration order.
func (p *Problem) Parameters() []Parameter {
	out := make([]Parameter, len(p.parameters))
	copy(out, p.parameters)
	return out
}

// ParamCount returns the number of parameters.
func (p *Problem) ParamCount() int { return len(p.parameters) }

// Definition pairs a Problem with authoring metadata that is not part of its
// rendered form.
type Definition struct {
	Problem *Problem
	// ReturnType is the C++ return type of the function, used for boilerplate.
	ReturnType string
	// Source names where the definition was loaded from.
	Source string
}
