package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoSumParams() []Parameter {
	return []Parameter{
		{Name: "nums", Type: "List<Integer>"},
		{Name: "target", Type: "int"},
	}
}

func TestNewProblem(t *testing.T) {
	p, err := NewProblem("Two Sum", "Find two numbers.", DifficultyEasy, "twoSum", twoSumParams())
	require.NoError(t, err)

	assert.Equal(t, "Two Sum", p.Title())
	assert.Equal(t, "Find two numbers.", p.Description())
	assert.Equal(t, DifficultyEasy, p.Difficulty())
	assert.Equal(t, "twoSum", p.FunctionName())
	assert.Equal(t, twoSumParams(), p.Parameters())
	assert.Equal(t, 2, p.ParamCount())
}

func TestNewProblem_Validation(t *testing.T) {
	tests := []struct {
		name      string
		fn        string
		params    []Parameter
		wantField string
		wantMsg   string
	}{
		{
			name:      "empty function name",
			fn:        "",
			params:    twoSumParams(),
			wantField: "function_name",
			wantMsg:   "must not be empty",
		},
		{
			name:      "function name starting with digit",
			fn:        "2sum",
			wantField: "function_name",
			wantMsg:   "must be a valid identifier",
		},
		{
			name:      "function name with spaces",
			fn:        "two sum",
			wantField: "function_name",
			wantMsg:   "must be a valid identifier",
		},
		{
			name: "duplicate parameter names",
			fn:   "twoSum",
			params: []Parameter{
				{Name: "nums", Type: "List<Integer>"},
				{Name: "nums", Type: "int"},
			},
			wantField: "parameters",
			wantMsg:   `duplicate parameter name "nums"`,
		},
		{
			name:      "empty parameter name",
			fn:        "twoSum",
			params:    []Parameter{{Name: "", Type: "int"}},
			wantField: "parameters[0].name",
			wantMsg:   "must not be empty",
		},
		{
			name:      "empty parameter type",
			fn:        "twoSum",
			params:    []Parameter{{Name: "nums", Type: "int"}, {Name: "target", Type: ""}},
			wantField: "parameters[1].type",
			wantMsg:   "must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProblem("Two Sum", "", DifficultyEasy, tt.fn, tt.params)
			require.Error(t, err)
			assert.Nil(t, p)
			assert.True(t, errors.Is(err, ErrInvalidProblem))

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Equal(t, tt.wantMsg, verr.Reason)
		})
	}
}

func TestNewProblem_AcceptsFreeFormDifficultyAndNoParameters(t *testing.T) {
	p, err := NewProblem("Warmup", "", Difficulty("trivial"), "_warmup1", nil)
	require.NoError(t, err)
	assert.False(t, p.Difficulty().Known())
	assert.Empty(t, p.Parameters())
}

func TestProblem_IsImmutable(t *testing.T) {
	params := twoSumParams()
	p, err := NewProblem("Two Sum", "", DifficultyEasy, "twoSum", params)
	require.NoError(t, err)

	params[0].Name = "changed"
	got := p.Parameters()
	got[1].Type = "long"

	assert.Equal(t, twoSumParams(), p.Parameters())
}

func TestDifficulty_Known(t *testing.T) {
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		assert.True(t, d.Known(), d)
	}
	assert.False(t, Difficulty("Easy").Known())
	assert.False(t, Difficulty("").Known())
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "function_name", Reason: "must not be empty"}
	assert.Equal(t, "invalid problem: function_name: must not be empty", err.Error())

	err = &ValidationError{Reason: "bad input"}
	assert.Equal(t, "invalid problem: bad input", err.Error())
}
