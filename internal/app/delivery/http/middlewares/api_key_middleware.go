package middlewares

import (
	"context"
	"mycare-service/internal/pkg/exceptions"
	"mycare-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

const (
	HeaderAPIKey      = "x-api-key"
	ContextAPIKeyAuth = "api_key_auth"
)

// APIKeyAuth marks the request as superadmin-authenticated when a valid
// API key header is present. Requests without the header pass through
// unchanged; requests with a wrong key are rejected.
func (m *Middlewares) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(HeaderAPIKey)

		if apiKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		if apiKey != m.InternalConfig.App.SuperadminAPIKey {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		ctx := context.WithValue(r.Context(), ContextAPIKeyAuth, true)

		m.Log.Info("API Key authentication successful",
			zap.String("ip", r.RemoteAddr),
			zap.String("endpoint", r.URL.Path),
			zap.String("method", r.Method),
			zap.String("user_agent", r.UserAgent()))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSuperadminAPIKey rejects any request that did not authenticate
// with the superadmin API key.
func (m *Middlewares) RequireSuperadminAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(HeaderAPIKey)

		if apiKey == "" || apiKey != m.InternalConfig.App.SuperadminAPIKey {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		ctx := context.WithValue(r.Context(), ContextAPIKeyAuth, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
