package labeler

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	openAIAttempts   = 3
	openAIRetryDelay = 2 * time.Second
)

type openaiProvider struct {
	client openai.Client
	model  string
}

// NewOpenAIProvider creates an OpenAI-backed completion provider.
func NewOpenAIProvider(apiKey, model string) Provider {
	return &openaiProvider{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (p *openaiProvider) Name() string { return "openai" }

func (p *openaiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	return retry.DoWithData(
		func() (string, error) {
			resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
				Messages: []openai.ChatCompletionMessageParamUnion{
					openai.UserMessage(prompt),
				},
				Model:       p.model,
				Temperature: openai.Float(0.2),
			})
			if err != nil {
				return "", fmt.Errorf("chat completion: %w", err)
			}
			if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
				return "", fmt.Errorf("empty response from OpenAI")
			}
			return resp.Choices[0].Message.Content, nil
		},
		retry.Context(ctx),
		retry.Attempts(openAIAttempts),
		retry.Delay(openAIRetryDelay),
		retry.DelayType(retry.BackOffDelay),
	)
}
