// Package auth holds the session credential established by the login
// exchange.
package auth

import (
	"context"
	"time"

	"github.com/michaelgwelch/metasys-go/pkg/metasys"
)

// TokenManager provides the bearer token for authenticated requests.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
	SetToken(token string, expiresAt time.Time)
}

// Manager is a TokenManager populated once by a successful login. The token
// is written before any request is issued and read-only afterwards, so no
// locking is needed.
type Manager struct {
	token     string
	expiresAt time.Time
}

// NewManager creates an empty Manager; requests fail with
// metasys.ErrNotAuthenticated until a token is set.
func NewManager() *Manager {
	return &Manager{}
}

// NewStatic creates a Manager preloaded with a caller-supplied token.
func NewStatic(token string) *Manager {
	return &Manager{token: token}
}

// GetToken implements TokenManager.GetToken.
func (m *Manager) GetToken(ctx context.Context) (string, error) {
	if m.token == "" {
		return "", metasys.ErrNotAuthenticated
	}

	return m.token, nil
}

// SetToken implements TokenManager.SetToken.
func (m *Manager) SetToken(token string, expiresAt time.Time) {
	m.token = token
	m.expiresAt = expiresAt
}

// ExpiresAt returns when the server reported the token expires. The zero
// time means the server did not say.
func (m *Manager) ExpiresAt() time.Time {
	return m.expiresAt
}
