package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mycare-service/internal/app/config"
	"mycare-service/internal/pkg/constvars"
	"mycare-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSessionAuth(t *testing.T) {
	secret := "test-session-secret"
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{
			Secret:        secret,
			ExpTimeInHour: 1,
		},
	}

	middlewares := &Middlewares{
		Log:            zap.NewNop(),
		InternalConfig: internalConfig,
	}

	t.Run("Valid token puts session ID on context", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("session-abc", secret, 1)
		require.NoError(t, err)

		var gotSessionID string
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotSessionID, _ = r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("POST", "/api/v1/workflow/submit", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.SessionAuth(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "session-abc", gotSessionID)
	})

	t.Run("Missing Authorization header rejected", func(t *testing.T) {
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be reached")
		})

		req := httptest.NewRequest("POST", "/api/v1/workflow/submit", nil)

		rr := httptest.NewRecorder()
		middlewares.SessionAuth(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Header without bearer prefix rejected", func(t *testing.T) {
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be reached")
		})

		req := httptest.NewRequest("POST", "/api/v1/workflow/submit", nil)
		req.Header.Set(constvars.HeaderAuthorization, "some-raw-token")

		rr := httptest.NewRecorder()
		middlewares.SessionAuth(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Token signed with another secret rejected", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("session-abc", "other-secret", 1)
		require.NoError(t, err)

		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be reached")
		})

		req := httptest.NewRequest("POST", "/api/v1/workflow/submit", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.SessionAuth(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	middlewares := &Middlewares{Log: zap.NewNop()}

	t.Run("Client request ID echoed", func(t *testing.T) {
		var gotRequestID string
		var gotIsClient bool
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotRequestID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			gotIsClient, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
		})

		req := httptest.NewRequest("GET", "/api/v1/patients/p1/consultations", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-req-1")

		rr := httptest.NewRecorder()
		middlewares.RequestIDMiddleware(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, "client-req-1", gotRequestID)
		assert.True(t, gotIsClient)
		assert.Equal(t, "client-req-1", rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Request ID generated when absent", func(t *testing.T) {
		var gotRequestID string
		var gotIsClient bool
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotRequestID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			gotIsClient, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
		})

		req := httptest.NewRequest("GET", "/api/v1/patients/p1/consultations", nil)

		rr := httptest.NewRecorder()
		middlewares.RequestIDMiddleware(testHandler).ServeHTTP(rr, req)

		assert.NotEmpty(t, gotRequestID)
		assert.False(t, gotIsClient)
		assert.Equal(t, gotRequestID, rr.Header().Get(constvars.HeaderXRequestID))
	})
}
