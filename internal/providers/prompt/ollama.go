package prompt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"adcraft/internal/domain"
	"adcraft/internal/infra"
)

const (
	defaultOllamaBaseURL = "http://localhost:11434"
	defaultOllamaModel   = "llama3.2"
	backupOllamaModel    = "llama3"
)

// OllamaOptions configures the local generator.
type OllamaOptions struct {
	BaseURL    string
	Model      string
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// OllamaGenerator talks to a local Ollama server through /api/generate.
type OllamaGenerator struct {
	baseURL string
	models  []string
	client  *http.Client
	logger  *infra.Logger
}

type ollamaGenerateRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	System  string         `json:"system,omitempty"`
	Stream  bool           `json:"stream"`
	Format  string         `json:"format,omitempty"`
	Options map[string]any `json:"options,omitempty"`
}

type ollamaGenerateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
	Error    string `json:"error"`
}

// NewOllamaGenerator builds the local generator. The base URL may be given
// with or without the /api suffix.
func NewOllamaGenerator(opts OllamaOptions) *OllamaGenerator {
	baseURL := strings.TrimRight(coalesce(opts.BaseURL, defaultOllamaBaseURL), "/")
	baseURL = strings.TrimSuffix(baseURL, "/api")
	client := opts.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	return &OllamaGenerator{
		baseURL: baseURL,
		models:  modelVariants(opts.Model, defaultOllamaModel, backupOllamaModel),
		client:  client,
		logger:  loggerOrDiscard(opts.Logger),
	}
}

func (g *OllamaGenerator) ID() domain.ProviderID {
	return domain.ProviderLocal
}

// Models returns the model variants in the order they are attempted.
func (g *OllamaGenerator) Models() []string {
	return append([]string(nil), g.models...)
}

func (g *OllamaGenerator) Generate(ctx context.Context, brief domain.Brief) (string, error) {
	var errs []error
	for _, model := range g.models {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		text, err := g.generate(ctx, model, brief)
		if err == nil {
			return text, nil
		}
		g.logger.Debug().
			Err(err).
			Str("provider", ollamaProviderName).
			Str("model", model).
			Msg("prompt: ollama attempt failed")
		errs = append(errs, fmt.Errorf("%s: %w", model, err))
	}
	return "", fmt.Errorf("%s: %w", ollamaProviderName, errors.Join(errs...))
}

func (g *OllamaGenerator) generate(ctx context.Context, model string, brief domain.Brief) (string, error) {
	payload := ollamaGenerateRequest{
		Model:   model,
		Prompt:  buildCopyPrompt(brief, formatJSON),
		System:  systemInstruction,
		Stream:  false,
		Format:  "json",
		Options: map[string]any{"temperature": 0.7},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/api/generate", &buf)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("ollama status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var out ollamaGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if out.Error != "" {
		return "", fmt.Errorf("ollama error: %s", out.Error)
	}
	text := strings.TrimSpace(out.Response)
	if text == "" {
		return "", domain.ErrEmptyCompletion
	}
	return text, nil
}

var _ Generator = (*OllamaGenerator)(nil)
