package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Provider selection values accepted by COPY_PROVIDER.
const (
	CopyProviderAuto   = "auto"
	CopyProviderOpenAI = "openai"
	CopyProviderGroq   = "groq"
	CopyProviderOllama = "ollama"
	CopyProviderNone   = "none"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv  string
	Port    string
	Hosted  bool
	Version string

	CopyProvider  string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	GroqAPIKey    string
	GroqModel     string
	GroqBaseURL   string
	OllamaBaseURL string
	OllamaModel   string

	PexelsAPIKey      string
	UnsplashAccessKey string

	GenerateTimeout    time.Duration
	HTTPReadTimeout    time.Duration
	HTTPWriteTimeout   time.Duration
	HTTPIdleTimeout    time.Duration
	CORSAllowedOrigins []string
	IncludeRaw         bool
	PreferIPv4         bool
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. No credential is mandatory: a missing key only
// removes that provider from the chain.
func LoadConfig() (*Config, error) {
	appEnv := getEnv("APP_ENV", "development")
	cfg := &Config{
		AppEnv:  appEnv,
		Port:    getEnv("PORT", "8080"),
		Hosted:  getEnvBool("HOSTED", false) || os.Getenv("VERCEL") != "" || appEnv == "production",
		Version: getEnv("APP_VERSION", "dev"),

		CopyProvider:  strings.ToLower(strings.TrimSpace(getEnv("COPY_PROVIDER", CopyProviderAuto))),
		OpenAIAPIKey:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIModel:   os.Getenv("OPENAI_MODEL"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		GroqAPIKey:    strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
		GroqModel:     os.Getenv("GROQ_MODEL"),
		GroqBaseURL:   os.Getenv("GROQ_BASE_URL"),
		OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:   os.Getenv("OLLAMA_MODEL"),

		PexelsAPIKey:      strings.TrimSpace(os.Getenv("PEXELS_API_KEY")),
		UnsplashAccessKey: strings.TrimSpace(os.Getenv("UNSPLASH_ACCESS_KEY")),

		GenerateTimeout:    time.Second * time.Duration(getEnvInt("GENERATE_TIMEOUT_SECONDS", 60)),
		HTTPReadTimeout:    time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:   time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 75)),
		HTTPIdleTimeout:    time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		IncludeRaw:         getEnvBool("INCLUDE_RAW", false),
		PreferIPv4:         getEnvBool("HTTP_PREFER_IPV4", false),
	}

	switch cfg.CopyProvider {
	case CopyProviderAuto, CopyProviderOpenAI, CopyProviderGroq, CopyProviderOllama, CopyProviderNone:
	default:
		return nil, fmt.Errorf("COPY_PROVIDER %q is not one of auto, openai, groq, ollama, none", cfg.CopyProvider)
	}

	if cfg.GenerateTimeout <= 0 {
		return nil, fmt.Errorf("GENERATE_TIMEOUT_SECONDS must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
