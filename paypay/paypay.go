// Package paypay is the boundary to the external PayPay account API.
// Only the call contract this bot depends on is modelled here: session
// construction from stored credentials, token refresh, a liveness
// probe and the balance query.
package paypay

import (
	"context"
	"errors"
)

// Credentials is the login material stored per account.
type Credentials struct {
	Phone       string
	Pass        string
	DeviceUUID  string
	ClientUUID  string
	AccessToken string
	Proxy       string
}

// TokenPair is a rotated session token pair. Both values are replaced
// together on every refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Client is a live session against the payment API.
type Client interface {
	// TokenRefresh exchanges the stored refresh token for a new pair.
	// The old refresh token is invalidated remotely on success.
	TokenRefresh(ctx context.Context, refreshToken string) (TokenPair, error)

	// Alive probes the API with the current session.
	Alive(ctx context.Context) error

	// Balance returns the wallet balance in JPY.
	Balance(ctx context.Context) (int64, error)
}

// Factory constructs a client from stored credentials. Handlers hold
// a Factory rather than a concrete session so tests can substitute
// fakes.
type Factory func(c Credentials) (Client, error)

// ErrUnauthorized marks responses rejected for a stale or missing
// access token.
var ErrUnauthorized = errors.New("paypay: unauthorized")

func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
