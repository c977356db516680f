package source

import (
	"context"

	"problemspec/internal/domain/model"
	"problemspec/internal/domain/ports"
)

const sampleSource = "builtin:two-sum"

// Static always returns the same definition. NewSample seeds it with Two Sum.
type Static struct {
	def *model.Definition
}

var _ ports.ProblemSource = (*Static)(nil)

// NewStatic wraps an already built definition.
func NewStatic(def *model.Definition) *Static {
	return &Static{def: def}
}

// NewSample returns the built-in Two Sum problem.
func NewSample() (*Static, error) {
	p, err := model.NewProblem(
		"Two Sum",
		"Given an array of integers nums and an integer target, return indices of the two numbers such that they add up to target.",
		model.DifficultyEasy,
		"twoSum",
		[]model.Parameter{
			{Name: "nums", Type: "List<Integer>"},
			{Name: "target", Type: "int"},
		},
	)
	if err != nil {
		return nil, err
	}
	return NewStatic(&model.Definition{Problem: p, ReturnType: "std::vector<int>", Source: sampleSource}), nil
}

// Load returns a shallow copy of the wrapped definition.
func (s *Static) Load(context.Context) (*model.Definition, error) {
	def := *s.def
	return &def, nil
}
