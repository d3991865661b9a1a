// Package selector tracks which stored account panel actions operate on.
package selector

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/paypay-hub/paypay-admin-bot/accounts"
)

type Status int

const (
	// StatusSelected means an account id is active.
	StatusSelected Status = iota
	// StatusNoAccount means the store holds no accounts.
	StatusNoAccount
	// StatusStoreUnavailable means the store could not be read at startup.
	StatusStoreUnavailable
)

func (s Status) String() string {
	switch s {
	case StatusSelected:
		return "selected"
	case StatusNoAccount:
		return "no account"
	case StatusStoreUnavailable:
		return "store unavailable"
	}
	return "unknown"
}

// State is a snapshot of the selection. ID is set only when
// Status is StatusSelected.
type State struct {
	Status Status
	ID     string
}

// Selector holds the process-wide active account pointer. All access
// goes through the mutex, a reader observes either the pre- or
// post-advance selection and never a torn intermediate.
type Selector struct {
	mu      sync.Mutex
	state   State
	service *accounts.Service
}

func New(service *accounts.Service) *Selector {
	return &Selector{
		state:   State{Status: StatusNoAccount},
		service: service,
	}
}

// Initialize picks the first account id, ascending. Runs once at
// startup, the selection is not persisted across restarts.
func (s *Selector) Initialize() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.service.IDs()
	if err != nil {
		log.WithFields(log.Fields{"error": err}).Error("Account listing failed, selection unavailable")
		s.state = State{Status: StatusStoreUnavailable}
		return s.state
	}

	if len(ids) == 0 {
		log.Warn("No accounts in store")
		s.state = State{Status: StatusNoAccount}
		return s.state
	}

	s.state = State{Status: StatusSelected, ID: ids[0]}
	log.WithFields(log.Fields{"account": s.state.ID}).Info("Default account selected")
	return s.state
}

// Current returns the selection snapshot.
func (s *Selector) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Advance moves the selection to the next account id, cyclically. The
// id list is re-read so accounts added or removed since startup are
// picked up. If the active id has disappeared the selection falls
// back to the first id of the refreshed list. A listing failure keeps
// the previous selection and is returned to the caller.
func (s *Selector) Advance() (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Status != StatusSelected {
		return s.state, nil
	}

	ids, err := s.service.IDs()
	if err != nil {
		return s.state, err
	}

	if len(ids) == 0 {
		s.state = State{Status: StatusNoAccount}
		return s.state, nil
	}

	next := ids[0]
	for i, id := range ids {
		if id == s.state.ID {
			next = ids[(i+1)%len(ids)]
			break
		}
	}

	s.state = State{Status: StatusSelected, ID: next}
	return s.state, nil
}
