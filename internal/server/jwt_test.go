package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpilot/roadmap-agent/internal/config"
	"github.com/careerpilot/roadmap-agent/internal/server/middleware"
)

func newTestJWTService(secret string) *JWTService {
	return NewJWTService(&config.AuthConfig{Secret: secret, ExpirationHours: 1})
}

func TestJWT_RoundTrip(t *testing.T) {
	svc := newTestJWTService("test-secret-value")
	clientID := uuid.New()

	token, err := svc.GenerateToken(clientID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, clientID, claims.GetClientID())
	assert.NotNil(t, claims.ExpiresAt)
}

func TestJWT_WrongSecretRejected(t *testing.T) {
	token, err := newTestJWTService("secret-one").GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = newTestJWTService("secret-two").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWT_MalformedTokenRejected(t *testing.T) {
	svc := newTestJWTService("test-secret-value")

	_, err := svc.ValidateToken("")
	assert.Error(t, err)

	_, err = svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestAuthMiddleware_WithJWTService(t *testing.T) {
	svc := newTestJWTService("test-secret-value")
	clientID := uuid.New()
	token, err := svc.GenerateToken(clientID)
	require.NoError(t, err)

	var gotClientID uuid.UUID
	handler := middleware.AuthMiddleware(svc.AsTokenValidator())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotClientID, _ = middleware.GetClientID(r)
			w.WriteHeader(http.StatusOK)
		}))

	req := httptest.NewRequest(http.MethodGet, "/runs/abc", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, clientID, gotClientID)
}

func TestAuthMiddleware_RejectsMissingAndBadTokens(t *testing.T) {
	svc := newTestJWTService("test-secret-value")
	handler := middleware.AuthMiddleware(svc.AsTokenValidator())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"garbage token", "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/runs/abc", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
