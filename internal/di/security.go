package di

import (
	"go.uber.org/fx"

	"github.com/devjourney/journey-go/internal/security"
)

// SecurityModule provides token verification and session dependencies
var SecurityModule = fx.Module("security",
	fx.Provide(
		security.NewGoogleVerifier,
		provideTokenVerifier,
		security.NewTokenCache,
		security.NewSessionService,
	),
)

func provideTokenVerifier(verifier *security.GoogleVerifier) security.TokenVerifier {
	return verifier
}
