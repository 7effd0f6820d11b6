// Package session replaces the SPA's ambient localStorage session with an
// explicit object: one configured credential pair, opaque tokens, and an
// inactivity expiry checked against an injected clock.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"
)

var ErrBadCredentials = errors.New("invalid login or password")

type Manager struct {
	login string
	pass  string
	ttl   time.Duration
	now   func() time.Time

	mu     sync.Mutex
	active map[string]time.Time // token -> last activity
}

func New(login, pass string, ttl time.Duration, now func() time.Time) *Manager {
	if now == nil {
		now = time.Now
	}
	return &Manager{
		login:  login,
		pass:   pass,
		ttl:    ttl,
		now:    now,
		active: make(map[string]time.Time),
	}
}

// Login checks the single credential pair and issues a token.
func (m *Manager) Login(login, pass string) (string, error) {
	if login != m.login || pass != m.pass {
		return "", ErrBadCredentials
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)

	m.mu.Lock()
	m.active[token] = m.now()
	m.mu.Unlock()

	return token, nil
}

func (m *Manager) Logout(token string) {
	m.mu.Lock()
	delete(m.active, token)
	m.mu.Unlock()
}

// IsValid reports whether the token exists and has been touched within the
// inactivity window. Expired tokens are dropped on the spot.
func (m *Manager) IsValid(token string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	last, ok := m.active[token]
	if !ok {
		return false
	}
	if m.now().Sub(last) > m.ttl {
		delete(m.active, token)
		return false
	}
	return true
}

// Touch resets the inactivity window for a known token.
func (m *Manager) Touch(token string) {
	m.mu.Lock()
	if _, ok := m.active[token]; ok {
		m.active[token] = m.now()
	}
	m.mu.Unlock()
}

// Require guards a subtree: a valid bearer token gets touched and passed
// through, anything else is a 401.
func (m *Manager) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" || !m.IsValid(token) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		m.Touch(token)
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(h[len("Bearer "):])
}
