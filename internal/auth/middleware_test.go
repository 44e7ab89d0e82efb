package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "super-secret-signing-key"

func signToken(t *testing.T, secret, subject, audience string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Audience:  jwt.ClaimStrings{audience},
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestParseToken(t *testing.T) {
	verifier := NewVerifier(testSecret)

	valid := signToken(t, testSecret, "user-1", "authenticated", time.Now().Add(time.Hour))
	userID, err := verifier.ParseToken(valid)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestParseTokenRejections(t *testing.T) {
	verifier := NewVerifier(testSecret)

	expired := signToken(t, testSecret, "user-1", "authenticated", time.Now().Add(-time.Hour))
	_, err := verifier.ParseToken(expired)
	assert.Error(t, err)

	wrongKey := signToken(t, "another-secret-entirely", "user-1", "authenticated", time.Now().Add(time.Hour))
	_, err = verifier.ParseToken(wrongKey)
	assert.Error(t, err)

	wrongAudience := signToken(t, testSecret, "user-1", "anon", time.Now().Add(time.Hour))
	_, err = verifier.ParseToken(wrongAudience)
	assert.Error(t, err)
}

func TestRequireAuth(t *testing.T) {
	verifier := NewVerifier(testSecret)
	handler := verifier.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := UserIDFromContext(r.Context())
		require.NoError(t, err)
		_, _ = w.Write([]byte(userID))
	}))

	token := signToken(t, testSecret, "user-1", "authenticated", time.Now().Add(time.Hour))

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/stats", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-1", rec.Body.String())
	})

	t.Run("session cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/stats", nil)
		req.AddCookie(&http.Cookie{Name: "sb-access-token", Value: token})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/stats", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/stats", nil)
		req.Header.Set("Authorization", "Bearer not.a.jwt")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUserIDFromContextMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := UserIDFromContext(req.Context())
	assert.Error(t, err)
}
