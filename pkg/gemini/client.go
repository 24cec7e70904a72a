package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const defaultTemperature = 0.5

// GenerationRequest is the outbound payload to the generative backend:
// a fixed behavioral directive, a per-trip brief, the response schema the
// backend must conform to, and whether live-search grounding is enabled.
type GenerationRequest struct {
	SystemDirective  string
	UserBrief        string
	OutputSchema     *genai.Schema
	GroundingEnabled bool
}

// Client wraps the Gemini SDK for schema-constrained trip generation.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini client authenticated with the given API key.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini.NewClient: %w", err)
	}
	return &Client{client: c, model: model}, nil
}

// GenerateTrip sends one generation request and returns the raw response
// text. The response is expected to be a JSON document matching the
// request's output schema, but nothing here assumes that; validation is
// the caller's job.
func (c *Client) GenerateTrip(ctx context.Context, req *GenerationRequest) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemDirective, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    req.OutputSchema,
		Temperature:       genai.Ptr[float32](defaultTemperature),
	}
	if req.GroundingEnabled {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(req.UserBrief), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini.GenerateTrip: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini.GenerateTrip: backend returned an empty response")
	}
	return text, nil
}
