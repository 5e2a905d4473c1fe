package security

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/devjourney/journey-go/internal/config"
)

const tokenCachePrefix = "journey:session:"

// TokenCache caches verified identities in Redis so a protected request does
// not cost a provider round trip every time. Entries live for the configured
// TTL, clamped to the token's own expiry, so an expired token can never be
// served from cache. All cache failures are soft: callers fall through to a
// direct verification.
type TokenCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewTokenCache creates a TokenCache with the configured TTL.
func NewTokenCache(client *redis.Client, cfg *config.SessionConfig, logger *zap.Logger) *TokenCache {
	return &TokenCache{
		client: client,
		ttl:    cfg.CacheTTL,
		logger: logger,
	}
}

// Get returns the cached identity for the token, if any.
func (c *TokenCache) Get(ctx context.Context, token string) (*Identity, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, cacheKey(token)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("token cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var identity Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return nil, false
	}
	return &identity, true
}

// Put caches the identity for the token. Best effort.
func (c *TokenCache) Put(ctx context.Context, token string, identity *Identity) {
	if c == nil || c.client == nil {
		return
	}

	ttl := cacheTTL(token, c.ttl)
	if ttl <= 0 {
		return
	}

	data, err := json.Marshal(identity)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey(token), data, ttl).Err(); err != nil {
		c.logger.Debug("token cache write failed", zap.Error(err))
	}
}

// cacheKey derives a fixed-size Redis key from the token signature.
func cacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return tokenCachePrefix + hex.EncodeToString(sum[:])
}

// cacheTTL clamps the configured TTL to the token's remaining lifetime. The
// claim parse here is unverified on purpose: the authoritative check already
// happened at the provider, the expiry is only used to bound the cache.
func cacheTTL(token string, max time.Duration) time.Duration {
	ttl := max

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err == nil {
		if claims.ExpiresAt != nil {
			if remaining := time.Until(claims.ExpiresAt.Time); remaining < ttl {
				ttl = remaining
			}
		}
	}

	return ttl
}
