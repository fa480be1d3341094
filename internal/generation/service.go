package generation

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"adcraft/internal/copywriter"
	"adcraft/internal/domain"
	"adcraft/internal/infra"
	"adcraft/internal/observability"
	"adcraft/internal/providers/image"
	"adcraft/internal/providers/prompt"
)

const (
	msgNoProviders   = "serving deterministic copy: no text providers configured"
	msgAllDeclined   = "serving deterministic copy: providers failed or were rejected"
	msgImageFallback = "image provider unavailable"
)

// ImageResolver looks up photo URLs for a brief.
type ImageResolver interface {
	Resolve(ctx context.Context, brief domain.Brief) ([]string, error)
}

// Options wires a Service.
type Options struct {
	Generators []prompt.Generator
	Images     ImageResolver
	Metrics    *observability.Metrics
	Logger     *infra.Logger
	Timeout    time.Duration
	IncludeRaw bool
}

// Service turns a brief into a GenerationResult. It walks the generators in
// order, keeps the first candidate that passes the quality gate, and otherwise
// serves the composed copy. It holds no per-request state and is safe for
// concurrent use.
type Service struct {
	generators []prompt.Generator
	images     ImageResolver
	metrics    *observability.Metrics
	logger     *infra.Logger
	timeout    time.Duration
	includeRaw bool
}

func NewService(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		discard := zerolog.New(io.Discard)
		logger = &discard
	}
	return &Service{
		generators: append([]prompt.Generator(nil), opts.Generators...),
		images:     opts.Images,
		metrics:    opts.Metrics,
		logger:     logger,
		timeout:    opts.Timeout,
		includeRaw: opts.IncludeRaw,
	}
}

// Providers lists the configured chain in attempt order.
func (s *Service) Providers() []domain.ProviderID {
	ids := make([]domain.ProviderID, 0, len(s.generators))
	for _, g := range s.generators {
		ids = append(ids, g.ID())
	}
	return ids
}

type candidate struct {
	provider domain.ProviderID
	copy     domain.Copy
	raw      string
}

// Generate validates the brief and always produces a result for a valid one.
// The only error besides ErrProductRequired is cancellation of ctx before any
// work was done.
func (s *Service) Generate(ctx context.Context, brief domain.Brief) (*domain.GenerationResult, error) {
	started := time.Now()
	brief.Normalize()
	if err := brief.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	result := &domain.GenerationResult{Images: []string{}}
	var messages []string

	if picked, ok := s.runChain(ctx, brief); ok {
		result.Provider = picked.provider
		result.Copy = picked.copy
		if s.includeRaw {
			result.Raw = picked.raw
		}
	} else {
		result.Provider = domain.ProviderFallback
		result.Demo = true
		result.Copy = copywriter.Compose(brief)
		if len(s.generators) == 0 {
			messages = append(messages, msgNoProviders)
		} else {
			messages = append(messages, msgAllDeclined)
		}
	}

	if brief.WantsImage() {
		if urls := s.resolveImages(ctx, brief); len(urls) > 0 {
			result.Images = urls
		} else {
			dataURL, err := image.RenderPlaceholder(brief.Product, copywriter.Seed(brief))
			if err != nil {
				s.logger.Error().Err(err).Msg("generation: placeholder render failed")
			}
			result.ImageDataURL = dataURL
			messages = append(messages, msgImageFallback)
		}
	}

	result.Message = strings.Join(messages, "; ")
	s.metrics.RecordGeneration(string(result.Provider))
	s.metrics.ObserveGenerate(time.Since(started))
	s.logger.Info().
		Str("provider", string(result.Provider)).
		Bool("demo", result.Demo).
		Int("images", len(result.Images)).
		Dur("took", time.Since(started)).
		Msg("generation: completed")
	return result, nil
}

func (s *Service) runChain(ctx context.Context, brief domain.Brief) (candidate, bool) {
	for _, gen := range s.generators {
		id := gen.ID()
		if err := ctx.Err(); err != nil {
			s.logger.Warn().Err(err).Str("provider", string(id)).Msg("generation: deadline reached before provider attempt")
			s.metrics.RecordCopyAttempt(string(id), observability.OutcomeFailed)
			return candidate{}, false
		}
		raw, err := gen.Generate(ctx, brief)
		if err != nil {
			s.logger.Warn().Err(err).Str("provider", string(id)).Str("reason", failureReason(err)).Msg("generation: provider failed")
			s.metrics.RecordCopyAttempt(string(id), observability.OutcomeFailed)
			continue
		}
		c := copywriter.Enforce(copywriter.Normalize(raw, brief.Product), brief)
		if reason := copywriter.RejectionReason(c, brief.Product, brief.Category, brief.KeyBenefit); reason != "" {
			s.logger.Info().Str("provider", string(id)).Str("reason", reason).Msg("generation: candidate rejected")
			s.metrics.RecordCopyAttempt(string(id), observability.OutcomeRejected)
			continue
		}
		s.metrics.RecordCopyAttempt(string(id), observability.OutcomeAccepted)
		return candidate{provider: id, copy: c, raw: raw}, true
	}
	return candidate{}, false
}

func (s *Service) resolveImages(ctx context.Context, brief domain.Brief) []string {
	if s.images == nil {
		return nil
	}
	urls, err := s.images.Resolve(ctx, brief)
	if err != nil {
		s.logger.Warn().Err(err).Msg("generation: image lookup interrupted")
	}
	return urls
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, domain.ErrEmptyCompletion):
		return "empty"
	case errors.Is(err, domain.ErrProviderUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
