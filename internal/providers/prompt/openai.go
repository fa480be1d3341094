package prompt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"adcraft/internal/domain"
	"adcraft/internal/infra"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultOpenAIModel   = "gpt-4o-mini"
)

// ChatOptions configures a generator speaking the OpenAI chat completions
// protocol.
type ChatOptions struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// ChatGenerator calls an OpenAI-compatible chat completions endpoint. The same
// type serves OpenAI itself and Groq, which differ only in base URL, models
// and provider identity.
type ChatGenerator struct {
	id       domain.ProviderID
	name     string
	client   *openai.Client
	models   []string
	jsonMode bool
	logger   *infra.Logger
}

type chatAttempt struct {
	model  string
	format promptFormat
}

// NewOpenAIGenerator builds the primary cloud generator.
func NewOpenAIGenerator(opts ChatOptions) (*ChatGenerator, error) {
	return newChatGenerator(domain.ProviderPrimaryCloud, openAIProviderName, opts,
		defaultOpenAIBaseURL, modelVariants(opts.Model, defaultOpenAIModel), true)
}

func newChatGenerator(id domain.ProviderID, name string, opts ChatOptions, defaultBaseURL string, models []string, jsonMode bool) (*ChatGenerator, error) {
	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%s api key is required: %w", name, domain.ErrProviderUnavailable)
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = strings.TrimRight(coalesce(opts.BaseURL, defaultBaseURL), "/")
	if opts.HTTPClient != nil {
		cfg.HTTPClient = opts.HTTPClient
	}
	return &ChatGenerator{
		id:       id,
		name:     name,
		client:   openai.NewClientWithConfig(cfg),
		models:   models,
		jsonMode: jsonMode,
		logger:   loggerOrDiscard(opts.Logger),
	}, nil
}

func (g *ChatGenerator) ID() domain.ProviderID {
	return g.id
}

// Models returns the model variants in the order they are attempted.
func (g *ChatGenerator) Models() []string {
	return append([]string(nil), g.models...)
}

// Generate tries every model with the JSON prompt, then the first model with
// the line-oriented prompt, returning the first non-empty reply.
func (g *ChatGenerator) Generate(ctx context.Context, brief domain.Brief) (string, error) {
	attempts := make([]chatAttempt, 0, len(g.models)+1)
	for _, model := range g.models {
		attempts = append(attempts, chatAttempt{model: model, format: formatJSON})
	}
	if len(g.models) > 0 {
		attempts = append(attempts, chatAttempt{model: g.models[0], format: formatLines})
	}

	var errs []error
	for _, attempt := range attempts {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		text, err := g.complete(ctx, brief, attempt)
		if err == nil {
			return text, nil
		}
		g.logger.Debug().
			Err(err).
			Str("provider", g.name).
			Str("model", attempt.model).
			Msg("prompt: chat attempt failed")
		errs = append(errs, fmt.Errorf("%s: %w", attempt.model, err))
	}
	if len(errs) == 0 {
		return "", fmt.Errorf("%s: no models configured: %w", g.name, domain.ErrProviderUnavailable)
	}
	return "", fmt.Errorf("%s: %w", g.name, errors.Join(errs...))
}

func (g *ChatGenerator) complete(ctx context.Context, brief domain.Brief, attempt chatAttempt) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       attempt.model,
		Temperature: 0.7,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: buildCopyPrompt(brief, attempt.format)},
		},
	}
	if g.jsonMode && attempt.format == formatJSON {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}
	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices: %w", domain.ErrEmptyCompletion)
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", domain.ErrEmptyCompletion
	}
	return text, nil
}

var _ Generator = (*ChatGenerator)(nil)

func coalesce(values ...string) string {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			return v
		}
	}
	return ""
}
