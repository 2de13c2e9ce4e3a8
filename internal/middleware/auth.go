package middleware

import (
	"errors"
	"net/http"
	"strings"

	"loja-api/internal/auth"
	"loja-api/internal/model"

	"github.com/rs/zerolog"
)

var (
	errMissingAuthorization = errors.New("missing authorization header")
	errBadAuthorization     = errors.New("authorization header is not a bearer token")
)

// Authenticate requires a valid "Bearer <token>" Authorization header. On
// failure it answers 401 and the wrapped handler is never invoked; on success
// the verified identity is attached to the request context.
func Authenticate(verifier auth.TokenVerifier, logger zerolog.Logger) func(http.Handler) http.Handler {
	logger = logger.With().Str("component", "auth").Logger()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r.Header.Get("Authorization"))
			if err == nil {
				var identity *auth.Identity
				identity, err = verifier.Verify(token)
				if err == nil {
					next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
					return
				}
			}

			logger.Warn().
				Err(err).
				Str("request_id", RequestIDFromContext(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("authentication failed")

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"mensagem":"` + model.ErrAuthenticationFailed.Message + `"}`))
		})
	}
}

// bearerToken extracts the token from an Authorization header value.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errMissingAuthorization
	}

	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", errBadAuthorization
	}

	return token, nil
}
