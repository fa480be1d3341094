package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"adcraft/internal/domain"
	"adcraft/internal/infra"
)

// Generator is the slice of generation.Service the handlers depend on.
type Generator interface {
	Generate(ctx context.Context, brief domain.Brief) (*domain.GenerationResult, error)
	Providers() []domain.ProviderID
}

type App struct {
	Generator    Generator
	ImageSources []string
	Version      string
	Logger       *infra.Logger
}

func NewApp(gen Generator, imageSources []string, version string, logger *infra.Logger) *App {
	if logger == nil {
		discard := zerolog.New(io.Discard)
		logger = &discard
	}
	return &App{Generator: gen, ImageSources: imageSources, Version: version, Logger: logger}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (a *App) error(w http.ResponseWriter, code int, kind, message string) {
	a.json(w, code, errorResponse{Error: kind, Message: message})
}
