package security

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/devjourney/journey-go/internal/config"
)

// DeriveUsername maps a verified email address to the stable username used
// as the record key: the local part before the first @. The mapping is lossy
// and collision-prone across domains; that is a known limitation, not a bug
// to fix here.
func DeriveUsername(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}

// SessionService establishes and resolves the cookie session. The session is
// nothing but the raw verified ID token; there is no server-side session
// store, so validity is entirely delegated to the provider's expiry and
// signature checks on each resolve.
type SessionService struct {
	verifier   TokenVerifier
	cache      *TokenCache
	cookieName string
	logger     *zap.Logger
}

// NewSessionService creates a SessionService around the given verifier.
func NewSessionService(verifier TokenVerifier, cache *TokenCache, cfg *config.SessionConfig, logger *zap.Logger) *SessionService {
	return &SessionService{
		verifier:   verifier,
		cache:      cache,
		cookieName: cfg.CookieName,
		logger:     logger,
	}
}

// Establish stores the verified token in an HTTP-only, SameSite=Lax cookie
// scoped to the whole site. No explicit expiry: the browser session and the
// token's own expiry bound its life.
func (s *SessionService) Establish(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, token, 0, "/", "", false, true)
}

// ResolveIdentity re-verifies the cookie's token and returns the identity.
// The verification cache short-circuits the provider round trip when the
// same token was verified recently.
func (s *SessionService) ResolveIdentity(c *gin.Context) (*Identity, error) {
	token, err := c.Cookie(s.cookieName)
	if err != nil || token == "" {
		return nil, ErrUnauthenticated
	}

	ctx := c.Request.Context()
	if identity, ok := s.cache.Get(ctx, token); ok {
		return identity, nil
	}

	identity, err := s.verifier.Verify(ctx, token)
	if err != nil {
		s.logger.Debug("session token failed verification", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	s.cache.Put(ctx, token, identity)
	return identity, nil
}

// Resolve re-verifies the cookie's token and returns the derived username.
func (s *SessionService) Resolve(c *gin.Context) (string, error) {
	identity, err := s.ResolveIdentity(c)
	if err != nil {
		return "", err
	}
	return DeriveUsername(identity.Email), nil
}
