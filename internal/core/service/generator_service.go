package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/roastify/roast-api/internal/core/domain"
	"github.com/roastify/roast-api/internal/core/ports"
)

// GeneratorService produces roast text from the upstream generator when one
// is configured, falling back to the built-in sample table on any failure.
// It never returns an error: the product requires that generation always
// yields output.
type GeneratorService struct {
	upstream ports.Generator      // nil when no API key is configured
	cache    ports.GenerationCache // nil when Redis is unavailable
	log      zerolog.Logger
}

func NewGeneratorService(upstream ports.Generator, cache ports.GenerationCache, log zerolog.Logger) *GeneratorService {
	return &GeneratorService{upstream: upstream, cache: cache, log: log}
}

// Generate returns roast text plus its provenance. The upstream path is
// consulted only when configured; cached results short-circuit the call.
func (s *GeneratorService) Generate(ctx context.Context, input, style, language string) (string, domain.Source) {
	if s.upstream == nil {
		return sampleRoast(style, language), domain.SourceSample
	}

	if s.cache != nil {
		if roast, ok := s.cache.Get(ctx, input, style, language); ok {
			return roast, domain.SourceAI
		}
	}

	roast, err := s.upstream.Generate(ctx, input, style, language)
	if err != nil {
		s.log.Warn().Err(err).Str("style", style).Str("language", language).
			Msg("upstream generation failed, falling back to samples")
		return sampleRoast(style, language), domain.SourceSample
	}

	if s.cache != nil {
		s.cache.Set(ctx, input, style, language, roast)
	}
	return roast, domain.SourceAI
}
