package middlewares

import (
	"context"
	"mycare-service/internal/pkg/constvars"
	"mycare-service/internal/pkg/exceptions"
	"mycare-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// SessionAuth verifies the bearer token issued when a workflow session is
// started and puts the session ID on the request context.
func (m *Middlewares) SessionAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader || token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			m.Log.Info("session token rejected",
				zap.String("endpoint", r.URL.Path),
				zap.String("ip", r.RemoteAddr),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
