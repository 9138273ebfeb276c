// Package llm optionally rewrites the static recommendation catalog into
// page-specific prose using the Gemini API. Without an API key it is a
// pass-through; every failure path falls back to the static text so the
// report always renders.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// Rewriter turns catalog advice into tailored suggestions.
type Rewriter struct {
	client  *genai.Client
	model   string
	enabled bool
}

// New creates a rewriter. With an empty API key the rewriter is disabled
// and Enhance returns its fallback unchanged.
func New(ctx context.Context, apiKey, model string) (*Rewriter, error) {
	if model == "" {
		model = defaultModel
	}
	if apiKey == "" {
		slog.Info("llm recommendations disabled (no API key)")
		return &Rewriter{model: model}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	slog.Info("llm recommendations enabled", "model", model)
	return &Rewriter{client: client, model: model, enabled: true}, nil
}

// Enabled reports whether rewriting is active.
func (r *Rewriter) Enabled() bool {
	return r != nil && r.enabled
}

// Enhance rewrites one recommendation for a specific page. One attempt, no
// retries; any failure degrades to the fallback text.
func (r *Rewriter) Enhance(ctx context.Context, pageURL, factor string, score int, fallback string) string {
	if !r.Enabled() {
		return fallback
	}

	prompt := fmt.Sprintf(
		"You are an SEO consultant. The page %s scored %d/100 on the %q factor. "+
			"Rewrite this generic advice as one concrete suggestion for that page, two sentences at most, plain text: %s",
		pageURL, score, factor, fallback,
	)

	result, err := r.client.Models.GenerateContent(ctx, r.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}, nil)
	if err != nil {
		slog.Warn("llm rewrite failed, using catalog text", "factor", factor, "error", err)
		return fallback
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return fallback
	}
	return text
}
