package output

import (
	"context"

	"problemspec/internal/domain/model"
	"problemspec/internal/domain/ports"
)

// Fanout publishes every document to several publishers in order.
type Fanout struct {
	logger     ports.Logger
	publishers []ports.Publisher
}

var _ ports.Publisher = (*Fanout)(nil)

// NewFanout drops nil publishers and keeps the rest in the given order.
func NewFanout(logger ports.Logger, publishers ...ports.Publisher) *Fanout {
	active := make([]ports.Publisher, 0, len(publishers))
	for _, p := range publishers {
		if p != nil {
			active = append(active, p)
		}
	}
	return &Fanout{
		logger:     logger,
		publishers: active,
	}
}

// Publish hands doc to every publisher, even after one fails, and returns the first error.
func (f *Fanout) Publish(ctx context.Context, doc model.Document) error {
	var firstErr error
	for _, p := range f.publishers {
		if err := p.Publish(ctx, doc); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			if f.logger != nil {
				f.logger.Error(ctx, "publisher failed", "document", doc.Name, "error", err)
			}
		}
	}
	return firstErr
}
