package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer_RoundTrip(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)
	tok, err := iss.Issue("user-1")
	require.NoError(t, err)

	claims, err := iss.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestIssuer_RejectsForeignKeyAndExpired(t *testing.T) {
	tok, err := NewIssuer("other", time.Hour).Issue("user-1")
	require.NoError(t, err)
	_, err = NewIssuer("secret", time.Hour).Parse(tok)
	assert.True(t, errors.Is(err, ErrInvalidToken))

	expired := NewIssuer("secret", time.Minute)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	tok, err = expired.Issue("user-1")
	require.NoError(t, err)
	_, err = NewIssuer("secret", time.Minute).Parse(tok)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestExtractBearer(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := ExtractBearer(r)
	assert.ErrorIs(t, err, ErrMissingToken)

	r.Header.Set("Authorization", "Basic abc")
	_, err = ExtractBearer(r)
	assert.ErrorIs(t, err, ErrInvalidToken)

	r.Header.Set("Authorization", "Bearer abc")
	tok, err := ExtractBearer(r)
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)
}

func TestMiddleware(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)
	var seen string
	h := Middleware(iss, func(w http.ResponseWriter, err error) {
		w.WriteHeader(http.StatusUnauthorized)
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	tok, err := iss.Issue("user-9")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "user-9", seen)
}
