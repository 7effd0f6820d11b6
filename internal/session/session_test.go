package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() (*Manager, *time.Time) {
	now := time.Date(2026, 1, 14, 9, 0, 0, 0, time.UTC)
	m := New("admin", "secret", 24*time.Hour, func() time.Time { return now })
	return m, &now
}

func TestLogin_BadCredentials(t *testing.T) {
	m, _ := newTestManager()

	_, err := m.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = m.Login("someone", "secret")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestSession_ExpiresAfterInactivity(t *testing.T) {
	m, now := newTestManager()

	token, err := m.Login("admin", "secret")
	require.NoError(t, err)
	assert.True(t, m.IsValid(token))

	*now = now.Add(25 * time.Hour)
	assert.False(t, m.IsValid(token))

	// Expired tokens are gone, a Touch cannot revive them.
	m.Touch(token)
	assert.False(t, m.IsValid(token))
}

func TestSession_TouchExtendsWindow(t *testing.T) {
	m, now := newTestManager()

	token, err := m.Login("admin", "secret")
	require.NoError(t, err)

	*now = now.Add(23 * time.Hour)
	m.Touch(token)

	*now = now.Add(23 * time.Hour)
	assert.True(t, m.IsValid(token))
}

func TestLogout(t *testing.T) {
	m, _ := newTestManager()

	token, err := m.Login("admin", "secret")
	require.NoError(t, err)

	m.Logout(token)
	assert.False(t, m.IsValid(token))
}

func TestRequire_GuardsHandler(t *testing.T) {
	m, _ := newTestManager()
	token, err := m.Login("admin", "secret")
	require.NoError(t, err)

	called := false
	handler := m.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	// No token.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/entries", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)

	// Valid bearer token.
	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}
