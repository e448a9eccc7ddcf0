package ports

import (
	"context"

	"github.com/roastify/roast-api/internal/core/domain"
)

// Generator is an upstream text-generation client. Implementations return an
// error for any failure (network, timeout, empty or too-short output); the
// caller decides how to fall back.
type Generator interface {
	Generate(ctx context.Context, input, style, language string) (string, error)
}

// GenerationCache stores generated roasts keyed by (input, style, language).
// Lookups are best-effort: implementations treat backend errors as misses.
type GenerationCache interface {
	Get(ctx context.Context, input, style, language string) (string, bool)
	Set(ctx context.Context, input, style, language, roast string)
}

// GeneratorService produces roast text. It never fails: when the upstream
// path is unavailable it falls back to the built-in sample table and reports
// provenance through the returned Source.
type GeneratorService interface {
	Generate(ctx context.Context, input, style, language string) (string, domain.Source)
}
