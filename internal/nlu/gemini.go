package nlu

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"ayursutra-server/internal/config"
)

// GeminiClient implements Client on the Gemini generative-language
// API.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGeminiClient creates an NLU client using an API key backend.
func NewGeminiClient(ctx context.Context, cfg config.GeminiConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY must be set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: cfg.Model,
	}, nil
}

// GenerateText sends the prompt, with the optional inline image, and
// returns the raw response text. Failures are classified: transport
// and cancellation problems as network, upstream errors as server, a
// successful call with no text as empty-response.
func (g *GeminiClient) GenerateText(ctx context.Context, req Request) (string, error) {
	parts := []*genai.Part{genai.NewPartFromText(req.Prompt)}
	if len(req.Image) > 0 {
		parts = append(parts, genai.NewPartFromBytes(req.Image, req.MIMEType))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	var genCfg *genai.GenerateContentConfig
	if req.System != "" {
		genCfg = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(req.System, genai.RoleUser),
		}
	}

	res, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, genCfg)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", &Failure{Kind: KindNetwork, Err: err}
		}
		return "", &Failure{Kind: KindServer, Err: err}
	}

	text := res.Text()
	if text == "" {
		return "", &Failure{Kind: KindEmpty, Err: errors.New("model returned no text")}
	}
	return text, nil
}
