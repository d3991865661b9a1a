package accounts

import (
	goerrors "errors"
	"fmt"
	"testing"

	"github.com/paypay-hub/paypay-admin-bot/errors"
)

type dummyStore struct {
	account      Account
	accountErr   error
	updateErr    error
	updateCalls  int
	insertedRows []Account
}

func (s *dummyStore) Accounts() ([]Account, error) {
	if s.accountErr != nil {
		return nil, s.accountErr
	}
	return []Account{s.account}, nil
}

func (s *dummyStore) Account(id string) (Account, error) {
	if s.accountErr != nil {
		return Account{}, s.accountErr
	}
	return s.account, nil
}

func (s *dummyStore) AccountIDs() ([]string, error) {
	if s.accountErr != nil {
		return nil, s.accountErr
	}
	return []string{s.account.ID}, nil
}

func (s *dummyStore) UpdateTokens(id, at, rt string) error {
	s.updateCalls++
	return s.updateErr
}

func (s *dummyStore) InsertAccount(a *Account) error {
	s.insertedRows = append(s.insertedRows, *a)
	return nil
}

func TestServiceDetails(t *testing.T) {
	t.Run("not found passes through", func(t *testing.T) {
		service := NewService(&dummyStore{accountErr: errors.ErrAccountNotFound})

		_, err := service.Details("missing")
		if !errors.IsNotFound(err) {
			t.Errorf("expected not-found, got %v", err)
		}
	})

	t.Run("other errors wrapped as StoreError", func(t *testing.T) {
		service := NewService(&dummyStore{accountErr: fmt.Errorf("connection refused")})

		_, err := service.Details("a1")
		var storeErr *errors.StoreError
		if !goerrors.As(err, &storeErr) {
			t.Errorf("expected StoreError, got %v", err)
		}
		if errors.IsNotFound(err) {
			t.Error("store failure must be distinct from not-found")
		}
	})
}

func TestServiceUpdateTokens(t *testing.T) {
	t.Run("not found passes through", func(t *testing.T) {
		service := NewService(&dummyStore{updateErr: errors.ErrAccountNotFound})

		if err := service.UpdateTokens("missing", "at", "rt"); !errors.IsNotFound(err) {
			t.Errorf("expected not-found, got %v", err)
		}
	})

	t.Run("single store write", func(t *testing.T) {
		store := &dummyStore{}
		service := NewService(store)

		if err := service.UpdateTokens("a1", "at", "rt"); err != nil {
			t.Fatal(err)
		}
		if store.updateCalls != 1 {
			t.Errorf("expected 1 store write, got %d", store.updateCalls)
		}
	})
}

func TestServiceCreate(t *testing.T) {
	service := NewService(&dummyStore{})

	if err := service.Create(&Account{Phone: "p", Pass: "s"}); err == nil {
		t.Error("expected an error for missing id")
	}

	if err := service.Create(&Account{ID: "a1"}); err == nil {
		t.Error("expected an error for missing credentials")
	}

	if err := service.Create(&Account{ID: "a1", Phone: "p", Pass: "s"}); err != nil {
		t.Errorf("expected create to succeed, got %v", err)
	}
}
