package ports

import "context"

// Logger keeps the use cases decoupled from a concrete logging backend.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
}
