package agi

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// Gemini wraps the generative model behind the narrow surface the
// planner consumes. The planner works fully without it.
type Gemini struct {
	client *genai.Client
	model  string
}

// New returns nil (not an error) when no API key is configured, so the
// caller simply runs the deterministic path only.
func New(ctx context.Context) (*Gemini, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("agi: no GEMINI_API_KEY set; generative planning disabled")
		return nil, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("agi client init: %w", err)
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}
	return &Gemini{client: client, model: model}, nil
}

// GeneratePlan renders the prompt and returns the raw model output.
// The result is untrusted text; the caller must validate it.
func (g *Gemini) GeneratePlan(ctx context.Context, spec PromptSpec) (string, error) {
	prompt, err := spec.Render()
	if err != nil {
		return "", fmt.Errorf("agi prompt render: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, 45*time.Second)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(callCtx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.5),
	})
	if err != nil {
		return "", fmt.Errorf("agi generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("agi generate: empty response")
	}
	return text, nil
}
