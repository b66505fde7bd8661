// Package metasysclient provides the entry point for creating Metasys API
// clients.
package metasysclient

import (
	"context"

	"github.com/michaelgwelch/metasys-go/internal/client"
	"github.com/michaelgwelch/metasys-go/pkg/metasys"
)

// New creates a new client from config. The client is unauthenticated until
// Login succeeds, unless the config carries a host and a pre-issued access
// token.
func New(config *metasys.Config) (metasys.Client, error) {
	if config == nil {
		return nil, metasys.ErrConfigRequired
	}

	c, err := client.New(config)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// NewWithToken creates a client bound to host with a pre-issued bearer
// token, skipping the login exchange.
func NewWithToken(host, token string) (metasys.Client, error) {
	return New(&metasys.Config{Host: host, AccessToken: token})
}

// NewWithLogin creates a client and performs the login exchange. On failure
// the client is nil and the diagnostic classifies what went wrong.
func NewWithLogin(ctx context.Context, host, username, password string) (metasys.Client, *metasys.LoginFailure) {
	c, _ := client.New(&metasys.Config{})

	ok, diag := c.Login(ctx, username, password, host)
	if !ok {
		return nil, diag
	}

	return c, nil
}
