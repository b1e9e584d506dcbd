package googleai

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	lcgoogleai "github.com/tmc/langchaingo/llms/googleai"

	"offercompare-backend/internal/llm"
)

const defaultModel = "gemini-2.5-flash"

// Client implements llm.Client using Google AI via langchaingo.
type Client struct {
	model llms.Model
}

// NewClient constructs a Google AI client. An empty model falls back to the
// default Gemini model.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}

	inner, err := lcgoogleai.New(ctx,
		lcgoogleai.WithAPIKey(apiKey),
		lcgoogleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("googleai client: %w", err)
	}
	return &Client{model: inner}, nil
}

// Generate sends the prompt as a single completion request.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt is empty")
	}
	resp, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt)
	if err != nil {
		return "", fmt.Errorf("googleai generate: %w", err)
	}
	return strings.TrimSpace(resp), nil
}

var _ llm.Client = (*Client)(nil)
