package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// geminiClient implements the Client interface for the Gemini API.
type geminiClient struct {
	client *genai.Client
	model  string
}

// newGeminiClient creates a new Gemini API client.
func newGeminiClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiClient{
		client: client,
		model:  model,
	}, nil
}

// ExtractExpense sends an extraction request to Gemini.
func (c *geminiClient) ExtractExpense(ctx context.Context, prompt string) (ExtractionResponse, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return ExtractionResponse{}, fmt.Errorf("gemini request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ExtractionResponse{}, fmt.Errorf("empty response from gemini")
	}

	var raw string
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			raw += part.Text
		}
	}
	if raw == "" {
		return ExtractionResponse{}, fmt.Errorf("no text parts in gemini response")
	}

	return parseExtraction(raw)
}
