package labeler

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/telltaleatheist/ContentStudio/internal/logger"
)

type geminiProvider struct {
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

// NewGeminiProvider creates a Gemini backend that rotates through the
// supplied API keys when one is rate limited.
func NewGeminiProvider(apiKeys []string, model string, log logger.Logger) Provider {
	return &geminiProvider{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}
}

func (p *geminiProvider) Name() string { return "gemini" }

// Complete sends the prompt to Gemini. Rotates API keys on 429 / quota
// errors; other errors surface immediately.
func (p *geminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	attempts := len(p.apiKeys)
	var lastErr error

	for range attempts {
		key := p.apiKeys[p.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			p.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				p.logger.Warn(ctx, "Gemini key %d rate limited, rotating...", p.currentKey+1)
				p.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text strings.Builder
			for _, part := range result.Candidates[0].Content.Parts {
				text.WriteString(part.Text)
			}
			if text.Len() > 0 {
				return text.String(), nil
			}
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (p *geminiProvider) rotateKey() {
	p.currentKey = (p.currentKey + 1) % len(p.apiKeys)
}
