package generation

import (
	"net/http"

	"adcraft/internal/infra"
	"adcraft/internal/observability"
	"adcraft/internal/providers/image"
	"adcraft/internal/providers/prompt"
)

// BuildChain assembles the text generators in priority order: primary cloud,
// secondary cloud, then the local server. Providers without credentials are
// skipped. COPY_PROVIDER narrows the chain to a single provider or to none.
// The local provider is never used in hosted deployments, even when selected
// explicitly, because it cannot be reached from there.
func BuildChain(cfg *infra.Config, client *http.Client, logger *infra.Logger) []prompt.Generator {
	if cfg == nil || cfg.CopyProvider == infra.CopyProviderNone {
		return nil
	}
	selected := func(name string) bool {
		return cfg.CopyProvider == "" || cfg.CopyProvider == infra.CopyProviderAuto || cfg.CopyProvider == name
	}

	var chain []prompt.Generator
	if selected(infra.CopyProviderOpenAI) && cfg.OpenAIAPIKey != "" {
		gen, err := prompt.NewOpenAIGenerator(prompt.ChatOptions{
			APIKey:     cfg.OpenAIAPIKey,
			BaseURL:    cfg.OpenAIBaseURL,
			Model:      cfg.OpenAIModel,
			HTTPClient: client,
			Logger:     logger,
		})
		if err == nil {
			chain = append(chain, gen)
		}
	}
	if selected(infra.CopyProviderGroq) && cfg.GroqAPIKey != "" {
		gen, err := prompt.NewGroqGenerator(prompt.ChatOptions{
			APIKey:     cfg.GroqAPIKey,
			BaseURL:    cfg.GroqBaseURL,
			Model:      cfg.GroqModel,
			HTTPClient: client,
			Logger:     logger,
		})
		if err == nil {
			chain = append(chain, gen)
		}
	}
	if selected(infra.CopyProviderOllama) && !cfg.Hosted {
		chain = append(chain, prompt.NewOllamaGenerator(prompt.OllamaOptions{
			BaseURL:    cfg.OllamaBaseURL,
			Model:      cfg.OllamaModel,
			HTTPClient: client,
			Logger:     logger,
		}))
	}
	return chain
}

// NewServiceFromConfig wires the provider chain, the image resolver and the
// shared outbound HTTP client from cfg. The resolver is returned as well so
// callers can report its sources.
func NewServiceFromConfig(cfg *infra.Config, metrics *observability.Metrics, logger *infra.Logger) (*Service, *image.Resolver) {
	client := infra.NewHTTPClient(infra.HTTPClientOptions{
		PreferIPv4: cfg.PreferIPv4,
		Timeout:    cfg.GenerateTimeout,
	})
	resolver := image.NewResolver(image.Options{
		PexelsAPIKey:      cfg.PexelsAPIKey,
		UnsplashAccessKey: cfg.UnsplashAccessKey,
		HTTPClient:        client,
		Recorder:          metrics,
		Logger:            logger,
	})
	svc := NewService(Options{
		Generators: BuildChain(cfg, client, logger),
		Images:     resolver,
		Metrics:    metrics,
		Logger:     logger,
		Timeout:    cfg.GenerateTimeout,
		IncludeRaw: cfg.IncludeRaw,
	})
	return svc, resolver
}
