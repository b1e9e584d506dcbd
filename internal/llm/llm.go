package llm

import (
	"context"
	"errors"
)

// Client abstracts text-generation providers for narrative assembly.
// Implementations take a fully built prompt and return prose; everything
// numeric in a report is computed before this boundary is crossed.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("LLM not implemented")

// PlaceholderClient is a stub implementation for runs without provider keys.
type PlaceholderClient struct{}

// Generate returns ErrNotImplemented.
func (PlaceholderClient) Generate(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotImplemented
}

// Func adapts a plain function to the Client interface, useful in tests.
type Func func(ctx context.Context, prompt string) (string, error)

// Generate calls the wrapped function.
func (f Func) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
