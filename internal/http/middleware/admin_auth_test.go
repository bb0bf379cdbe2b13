package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveAdmin(t *testing.T, secret string, mutate func(*http.Request)) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/submissions", nil)
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()
	called := false
	AdminJWT(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		claims, ok := AdminClaimsFromContext(r.Context())
		require.True(t, ok, "expected admin claims in context")
		assert.Equal(t, "admin-user", claims.Subject)
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(rec, req)
	return rec, called
}

func TestAdminJWTMissingSecret(t *testing.T) {
	rec, called := serveAdmin(t, "", nil)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminJWTMissingHeader(t *testing.T) {
	rec, called := serveAdmin(t, "secret", nil)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"missing authorization"}`, rec.Body.String())
}

func TestAdminJWTInvalidToken(t *testing.T) {
	rec, called := serveAdmin(t, "secret", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+signedAdminToken(t, "wrong", time.Minute))
	})
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminJWTExpiredToken(t *testing.T) {
	rec, called := serveAdmin(t, "secret", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+signedAdminToken(t, "secret", -time.Minute))
	})
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminJWTValidToken(t *testing.T) {
	rec, called := serveAdmin(t, "secret", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+signedAdminToken(t, "secret", 5*time.Minute))
	})
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminJWTCookieToken(t *testing.T) {
	rec, called := serveAdmin(t, "secret", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: AdminTokenCookie, Value: signedAdminToken(t, "secret", 5*time.Minute)})
	})
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func signedAdminToken(t *testing.T, secret string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   "admin-user",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}
