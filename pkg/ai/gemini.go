package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiClient generates text through the Gemini API
type GeminiClient struct{}

// NewGeminiClient creates a Gemini client. The underlying SDK client is
// built per call because the credential travels with the request.
func NewGeminiClient() *GeminiClient {
	return &GeminiClient{}
}

// Generate produces text for a prompt using the requested Gemini model
func (g *GeminiClient) Generate(ctx context.Context, params GenerateParams) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: params.APIKey,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}

	temperature := float32(params.Temperature)
	genConfig := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: int32(params.MaxTokens),
	}
	if params.System != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(params.System, genai.RoleUser)
	}

	resp, err := client.Models.GenerateContent(ctx, params.Model,
		[]*genai.Content{genai.NewContentFromText(params.Prompt, genai.RoleUser)},
		genConfig)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from gemini")
	}
	return text, nil
}
