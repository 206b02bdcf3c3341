package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// ErrMissingToken means the request carried no usable Authorization header.
var ErrMissingToken = errors.New("bearer token required")

// Authorizer returns a per-request check used to gate mutating endpoints.
// Handlers call it before acting; a nil authorizer leaves the endpoint open,
// preserving the unauthenticated surface when no JWT secret is configured.
func Authorizer(svc *Service, logger zerolog.Logger) func(r *http.Request) error {
	log := logger.With().Str("component", "auth_middleware").Logger()
	return func(r *http.Request) error {
		parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return ErrMissingToken
		}
		if _, err := svc.ValidateToken(parts[1]); err != nil {
			log.Warn().Err(err).Msg("token validation failed")
			return err
		}
		return nil
	}
}
