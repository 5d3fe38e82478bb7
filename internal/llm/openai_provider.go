package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/blaisecz/comfort-census/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAIProvider uses Chat Completions with a strict JSON-schema response format.
type OpenAIProvider struct {
	client openai.Client
	model  string
}

// NewOpenAIProvider creates an OpenAI provider. Returns nil if apiKey is empty.
// SDK retries are disabled; retry policy belongs to the prescription service.
func NewOpenAIProvider(apiKey, model string, opts ...option.RequestOption) *OpenAIProvider {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = DefaultOpenAIModel
	}

	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)

	return &OpenAIProvider{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

func (p *OpenAIProvider) Name() string {
	return "openai"
}

// GenerateJSON returns the assistant message content.
func (p *OpenAIProvider) GenerateJSON(ctx context.Context, req Request) (string, error) {
	if p == nil {
		return "", domain.NewGenerationError(domain.GenerationUnavailable, errors.New("openai provider not configured"))
	}

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: p.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemInstruction),
			openai.UserMessage(req.Prompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        "comfort_prescription",
					Description: openai.String("A single comfort prescription"),
					Schema:      req.Schema.JSONSchema(),
					Strict:      openai.Bool(true),
				},
			},
		},
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &domain.GenerationError{
				Kind:       domain.GenerationProviderStatus,
				StatusCode: apiErr.StatusCode,
				Err:        err,
			}
		}
		return "", domain.NewGenerationError(domain.GenerationTransport, err)
	}

	if len(resp.Choices) == 0 {
		return "", domain.NewGenerationError(domain.GenerationMalformedResponse, errors.New("no choices in response"))
	}

	msg := resp.Choices[0].Message
	if msg.Refusal != "" {
		return "", domain.NewGenerationError(domain.GenerationMalformedResponse, fmt.Errorf("model refused: %s", msg.Refusal))
	}
	return msg.Content, nil
}
