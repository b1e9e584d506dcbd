package llm

import (
	"context"
	"errors"
	"testing"
)

func TestPlaceholderClient(t *testing.T) {
	var c Client = PlaceholderClient{}
	_, err := c.Generate(context.Background(), "anything")
	if !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}
}

func TestFuncAdapter(t *testing.T) {
	var c Client = Func(func(ctx context.Context, prompt string) (string, error) {
		return "echo: " + prompt, nil
	})
	got, err := c.Generate(context.Background(), "hi")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "echo: hi" {
		t.Fatalf("unexpected result %q", got)
	}
}
