package ports

import (
	"context"

	"problemspec/internal/domain/model"
)

// ProblemSource loads a problem definition from somewhere (a file, LeetCode, a built-in sample).
type ProblemSource interface {
	Load(ctx context.Context) (*model.Definition, error)
}
