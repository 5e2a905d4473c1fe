// Package security verifies Google ID tokens and manages the session cookie
// that carries them between requests.
package security

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/devjourney/journey-go/internal/config"
	"github.com/devjourney/journey-go/internal/resilience"
)

var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrUnauthenticated = errors.New("not authenticated")
)

// Identity is the verified subject of a Google ID token.
type Identity struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// TokenVerifier checks a bearer token with the identity provider.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// GoogleVerifier verifies ID tokens against Google's tokeninfo endpoint and
// checks the audience against the configured client ID.
type GoogleVerifier struct {
	clientID     string
	tokeninfoURL string
	httpClient   *http.Client
	retry        *resilience.RetryConfig
	logger       *zap.Logger
}

// tokeninfoResponse is the subset of the tokeninfo payload we rely on.
type tokeninfoResponse struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Picture  string `json:"picture"`
	Audience string `json:"aud"`
}

// NewGoogleVerifier creates a verifier for the configured provider.
func NewGoogleVerifier(cfg *config.GoogleConfig, logger *zap.Logger) *GoogleVerifier {
	return &GoogleVerifier{
		clientID:     cfg.ClientID,
		tokeninfoURL: cfg.TokeninfoURL,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		retry:        resilience.DefaultRetryConfig(),
		logger:       logger,
	}
}

var _ TokenVerifier = (*GoogleVerifier)(nil)

// Verify introspects the token with the provider. It fails with
// ErrInvalidToken when the provider rejects the token, the payload carries
// no email claim, or the audience does not match the configured client ID.
func (v *GoogleVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	endpoint := v.tokeninfoURL + "?id_token=" + url.QueryEscape(token)

	// Transient provider failures are retried; an explicit rejection is not
	// going to change on a second attempt.
	payload, err := resilience.Retry(ctx, v.retry, func(ctx context.Context) (tokeninfoResponse, error) {
		var payload tokeninfoResponse

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return payload, resilience.NewPermanent(fmt.Errorf("building tokeninfo request: %w", err))
		}

		resp, err := v.httpClient.Do(req)
		if err != nil {
			return payload, fmt.Errorf("tokeninfo request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusInternalServerError {
			return payload, fmt.Errorf("tokeninfo unavailable: status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			v.logger.Debug("tokeninfo rejected token", zap.Int("status", resp.StatusCode))
			return payload, resilience.NewPermanent(ErrInvalidToken)
		}

		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return payload, fmt.Errorf("decoding tokeninfo response: %w", err)
		}
		return payload, nil
	})
	if err != nil {
		return nil, err
	}

	if payload.Email == "" {
		return nil, ErrInvalidToken
	}
	if v.clientID != "" && payload.Audience != v.clientID {
		v.logger.Warn("token audience mismatch", zap.String("aud", payload.Audience))
		return nil, ErrInvalidToken
	}

	return &Identity{
		Email:   payload.Email,
		Name:    payload.Name,
		Picture: payload.Picture,
	}, nil
}
