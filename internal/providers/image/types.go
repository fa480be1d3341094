package image

import (
	"context"
	"strings"

	"adcraft/internal/domain"
)

const (
	// MaxResults caps how many photo URLs a single brief collects.
	MaxResults = 6

	pexelsSourceName   = "pexels"
	unsplashSourceName = "unsplash"
)

// Searcher is the contract implemented by every stock-photo backend.
type Searcher interface {
	Name() string
	Search(ctx context.Context, query string, limit int) ([]string, error)
}

// LookupRecorder receives one observation per searcher call. Outcomes are
// "hit", "empty" or "error".
type LookupRecorder interface {
	RecordImageLookup(source, outcome string)
}

// QueryVariants builds the ordered, de-duplicated search queries for a brief.
func QueryVariants(b domain.Brief) []string {
	base := collapse(b.ImageQuery)
	if base == "" {
		base = collapse(strings.Join([]string{b.Product, b.Category, b.ImageStyle, b.ColorHint}, " "))
	}
	if base == "" {
		return nil
	}
	candidates := []string{
		base,
		collapse(base + " product photo " + b.ImageStyle),
		collapse(base + " studio, minimal"),
	}
	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, q := range candidates {
		key := strings.ToLower(q)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, q)
	}
	return out
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// firstURL returns the first non-empty candidate. Callers list renditions from
// largest to smallest.
func firstURL(candidates ...string) string {
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			return c
		}
	}
	return ""
}
