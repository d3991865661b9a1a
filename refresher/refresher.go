// Package refresher rotates the stored session token pair of an
// account via the payment API and persists the result.
package refresher

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/paypay-hub/paypay-admin-bot/accounts"
	"github.com/paypay-hub/paypay-admin-bot/paypay"
)

// Stage identifies where a refresh failed.
type Stage string

const (
	// StageInit: the client session could not be constructed, no
	// remote call was made.
	StageInit Stage = "init"
	// StageRefresh: the remote refresh call failed, stored tokens are
	// untouched.
	StageRefresh Stage = "refresh"
	// StagePersist: the remote rotation succeeded but the store write
	// failed. The stored pair is now stale; retry the WRITE, a second
	// remote refresh with the stale stored token would be rejected.
	StagePersist Stage = "persist"
)

type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("token refresh (%s): %s", e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

type Service struct {
	service *accounts.Service
	dial    paypay.Factory
}

func NewService(service *accounts.Service, dial paypay.Factory) *Service {
	return &Service{service, dial}
}

// Refresh performs exactly one remote refresh call and at most one
// store write, then returns the record with the rotated pair. Any
// failure is reported as an *Error carrying the stage and cause.
func (s *Service) Refresh(ctx context.Context, a accounts.Account) (accounts.Account, error) {
	client, err := s.dial(credentials(a))
	if err != nil {
		return a, &Error{Stage: StageInit, Err: err}
	}

	pair, err := client.TokenRefresh(ctx, a.RefreshToken)
	if err != nil {
		return a, &Error{Stage: StageRefresh, Err: err}
	}

	if err := s.service.UpdateTokens(a.ID, pair.AccessToken, pair.RefreshToken); err != nil {
		log.
			WithFields(log.Fields{"account": a.ID, "error": err}).
			Error("Token pair rotated remotely but not persisted")
		return a, &Error{Stage: StagePersist, Err: err}
	}

	a.AccessToken = pair.AccessToken
	a.RefreshToken = pair.RefreshToken
	return a, nil
}

// EnsureFresh applies the staleness policy: a record without a
// complete token pair is refreshed, otherwise it is used as stored.
// Callers follow up with a single refresh when the API rejects the
// stored token (paypay.IsAuthError).
func (s *Service) EnsureFresh(ctx context.Context, a accounts.Account) (accounts.Account, error) {
	if a.HasTokens() {
		return a, nil
	}
	return s.Refresh(ctx, a)
}

func credentials(a accounts.Account) paypay.Credentials {
	return paypay.Credentials{
		Phone:       a.Phone,
		Pass:        a.Pass,
		DeviceUUID:  a.DeviceUUID,
		ClientUUID:  a.ClientUUID,
		AccessToken: a.AccessToken,
		Proxy:       a.Proxy,
	}
}
