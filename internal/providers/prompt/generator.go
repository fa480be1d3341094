package prompt

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"adcraft/internal/domain"
	"adcraft/internal/infra"
)

// Generator sends a brief to one external text service and returns its raw
// reply. A returned error means this provider produced nothing usable; callers
// move on to the next one.
type Generator interface {
	ID() domain.ProviderID
	Generate(ctx context.Context, brief domain.Brief) (string, error)
}

// modelVariants lists the override first, then the defaults, without repeats.
func modelVariants(override string, defaults ...string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range append([]string{override}, defaults...) {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

func loggerOrDiscard(l *infra.Logger) *infra.Logger {
	if l != nil {
		return l
	}
	discard := infra.Logger(zerolog.New(io.Discard))
	return &discard
}
