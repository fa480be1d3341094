package image

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"adcraft/internal/domain"
	"adcraft/internal/infra"
)

// Options configures a Resolver. Searchers, when set, replace the ones built
// from the API keys.
type Options struct {
	PexelsAPIKey      string
	UnsplashAccessKey string
	HTTPClient        *http.Client
	Searchers         []Searcher
	Recorder          LookupRecorder
	Logger            *infra.Logger
}

// Resolver collects stock-photo URLs for a brief across its searchers.
type Resolver struct {
	searchers []Searcher
	recorder  LookupRecorder
	logger    *infra.Logger
}

// NewResolver wires the searchers whose credentials are present.
func NewResolver(opts Options) *Resolver {
	searchers := opts.Searchers
	if searchers == nil {
		if s, err := NewPexelsSearcher(opts.PexelsAPIKey, "", opts.HTTPClient); err == nil {
			searchers = append(searchers, s)
		}
		if s, err := NewUnsplashSearcher(opts.UnsplashAccessKey, "", opts.HTTPClient); err == nil {
			searchers = append(searchers, s)
		}
	}
	logger := opts.Logger
	if logger == nil {
		discard := zerolog.New(io.Discard)
		logger = &discard
	}
	return &Resolver{searchers: searchers, recorder: opts.Recorder, logger: logger}
}

// Sources lists the configured searcher names in query order.
func (r *Resolver) Sources() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.searchers))
	for _, s := range r.searchers {
		names = append(names, s.Name())
	}
	return names
}

// Resolve returns up to MaxResults unique photo URLs. Every variant asks for a
// full page of MaxResults; the cap applies after dedup. Failures are logged and
// absorbed, so the slice may be empty while the error stays nil. Only context
// cancellation is reported.
func (r *Resolver) Resolve(ctx context.Context, brief domain.Brief) ([]string, error) {
	urls := []string{}
	seen := make(map[string]struct{})
	for _, query := range QueryVariants(brief) {
		found, err := r.Lookup(ctx, query, MaxResults)
		if errors.Is(err, domain.ErrNoSearchers) {
			return urls, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return urls, ctxErr
		}
		for _, u := range found {
			if _, ok := seen[u]; ok {
				continue
			}
			seen[u] = struct{}{}
			urls = append(urls, u)
			if len(urls) >= MaxResults {
				return urls, nil
			}
		}
	}
	return urls, nil
}

// Lookup runs a single query against every searcher in order and returns the
// URLs gathered before limit is reached. The error is non-nil only when no
// searcher is configured or every searcher failed.
func (r *Resolver) Lookup(ctx context.Context, query string, limit int) ([]string, error) {
	if r == nil || len(r.searchers) == 0 {
		return nil, domain.ErrNoSearchers
	}
	limit = clampLimit(limit)
	var (
		out  []string
		errs []error
	)
	for _, s := range r.searchers {
		if len(out) >= limit {
			break
		}
		if err := ctx.Err(); err != nil {
			return out, err
		}
		found, err := s.Search(ctx, query, limit)
		switch {
		case err != nil:
			r.record(s.Name(), "error")
			r.logger.Warn().Err(err).Str("source", s.Name()).Str("query", query).Msg("image: search failed")
			errs = append(errs, err)
			continue
		case len(found) == 0:
			r.record(s.Name(), "empty")
		default:
			r.record(s.Name(), "hit")
		}
		out = append(out, found...)
	}
	if len(out) == 0 && len(errs) == len(r.searchers) {
		return nil, errors.Join(errs...)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *Resolver) record(source, outcome string) {
	if r.recorder != nil {
		r.recorder.RecordImageLookup(source, outcome)
	}
}
