package accounts

import (
	"fmt"

	"github.com/paypay-hub/paypay-admin-bot/errors"
)

// Service defines the API for account record management.
type Service struct {
	store Store
}

// NewService initiates a new account service.
func NewService(store Store) *Service {
	return &Service{store}
}

// List returns all accounts in the store.
func (s *Service) List() ([]Account, error) {
	aa, err := s.store.Accounts()
	if err != nil {
		return nil, &errors.StoreError{Op: "list accounts", Err: err}
	}
	return aa, nil
}

// Details returns a specific account. An unknown id is reported as
// errors.ErrAccountNotFound, other store failures as StoreError.
func (s *Service) Details(id string) (Account, error) {
	a, err := s.store.Account(id)
	if err != nil {
		if errors.IsNotFound(err) {
			return Account{}, err
		}
		return Account{}, &errors.StoreError{Op: "get account", Err: err}
	}
	return a, nil
}

// IDs returns all known account ids in ascending order.
func (s *Service) IDs() ([]string, error) {
	ids, err := s.store.AccountIDs()
	if err != nil {
		return nil, &errors.StoreError{Op: "list account ids", Err: err}
	}
	return ids, nil
}

// UpdateTokens persists a rotated token pair. The write replaces both
// tokens or neither.
func (s *Service) UpdateTokens(id, accessToken, refreshToken string) error {
	if err := s.store.UpdateTokens(id, accessToken, refreshToken); err != nil {
		if errors.IsNotFound(err) {
			return err
		}
		return &errors.StoreError{Op: "update tokens", Err: err}
	}
	return nil
}

// Create validates and inserts a new account record. Only the
// provisioning CLI calls this, no chat command creates accounts.
func (s *Service) Create(a *Account) error {
	if a.ID == "" {
		return fmt.Errorf("account id is required")
	}
	if a.Phone == "" || a.Pass == "" {
		return fmt.Errorf("account login credentials are required")
	}
	if err := s.store.InsertAccount(a); err != nil {
		return &errors.StoreError{Op: "insert account", Err: err}
	}
	return nil
}
