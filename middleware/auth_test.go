package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, userID string, issuedAt, expiresAt time.Time) string {
	t.Helper()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func runAuth(authHeader string) (*httptest.ResponseRecorder, primitive.ObjectID, bool) {
	var gotID primitive.ObjectID
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, called = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	Auth(testSecret)(next).ServeHTTP(rec, req)
	return rec, gotID, called
}

func TestAuthMissingHeader(t *testing.T) {
	rec, _, called := runAuth("")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.False(t, called)
}

func TestAuthMalformedHeader(t *testing.T) {
	for _, h := range []string{"garbage", "Basic abc", "Bearer", "Bearer not.a.token"} {
		rec, _, called := runAuth(h)
		assert.Equal(t, http.StatusForbidden, rec.Code, "header %q", h)
		assert.False(t, called, "header %q", h)
	}
}

func TestAuthWrongSignature(t *testing.T) {
	id := primitive.NewObjectID()
	token := signToken(t, "other-secret", id.Hex(), time.Now(), time.Now().Add(time.Hour))
	rec, _, called := runAuth("Bearer " + token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestAuthValidToken(t *testing.T) {
	id := primitive.NewObjectID()
	token := signToken(t, testSecret, id.Hex(), time.Now(), time.Now().Add(time.Hour))
	rec, gotID, called := runAuth("Bearer " + token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.Equal(t, id, gotID)
}

func TestAuthBadUserID(t *testing.T) {
	token := signToken(t, testSecret, "not-an-object-id", time.Now(), time.Now().Add(time.Hour))
	rec, _, called := runAuth("Bearer " + token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

// A token has a 365-day window: still good a day before expiry, dead a day
// after.
func TestAuthExpiryWindow(t *testing.T) {
	id := primitive.NewObjectID()
	const ttl = 365 * 24 * time.Hour

	issued := time.Now().Add(-364 * 24 * time.Hour)
	token := signToken(t, testSecret, id.Hex(), issued, issued.Add(ttl))
	rec, _, _ := runAuth("Bearer " + token)
	assert.Equal(t, http.StatusOK, rec.Code)

	issued = time.Now().Add(-366 * 24 * time.Hour)
	token = signToken(t, testSecret, id.Hex(), issued, issued.Add(ttl))
	rec, _, called := runAuth("Bearer " + token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}
