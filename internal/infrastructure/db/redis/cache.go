package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const cacheTTL = time.Hour

// GenerationCache caches upstream roast generations so repeated prompts skip
// the external call. Backend errors are swallowed and treated as misses: the
// cache is an optimization, never a dependency.
// Key format: roast:gen:<sha256(input|style|language)>
type GenerationCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewGenerationCache creates a GenerationCache wrapping the given Redis client.
func NewGenerationCache(client *redis.Client, log zerolog.Logger) *GenerationCache {
	return &GenerationCache{client: client, log: log}
}

// Get returns a cached roast for the prompt, if one exists.
func (c *GenerationCache) Get(ctx context.Context, input, style, language string) (string, bool) {
	roast, err := c.client.Get(ctx, c.key(input, style, language)).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("generation cache lookup failed")
		}
		return "", false
	}
	return roast, true
}

// Set records a generated roast (expires after cacheTTL).
func (c *GenerationCache) Set(ctx context.Context, input, style, language, roast string) {
	if err := c.client.Set(ctx, c.key(input, style, language), roast, cacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("generation cache store failed")
	}
}

func (c *GenerationCache) key(input, style, language string) string {
	sum := sha256.Sum256([]byte(input + "|" + style + "|" + language))
	return fmt.Sprintf("roast:gen:%s", hex.EncodeToString(sum[:]))
}
