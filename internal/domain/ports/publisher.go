package ports

import (
	"context"

	"problemspec/internal/domain/model"
)

// Publisher delivers rendered documents to a downstream channel (stdout, a directory, Discord).
type Publisher interface {
	Publish(ctx context.Context, doc model.Document) error
}
