// Package store owns the single CalendarState and the reducer that advances
// it. The store is constructed explicitly and handed to whoever needs it;
// there is no ambient global.
package store

import (
	"sync"

	"go.uber.org/zap"

	"github.com/calview/calview-api/internal/models"
)

// Store serializes action dispatches against the one shared CalendarState.
// The mutex is the Go rendering of the UI's single dispatch queue: rapid
// concurrent dispatches apply strictly one at a time.
type Store struct {
	mu     sync.RWMutex
	state  models.CalendarState
	deps   Deps
	subs   []func(models.CalendarState)
	logger *zap.Logger
}

// New builds a store around the initial state. A zero CurrentDate defaults to
// now and an empty view defaults to month.
func New(initial models.CalendarState, deps Deps, logger *zap.Logger) *Store {
	deps = deps.withDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}
	if initial.CurrentDate.IsZero() {
		initial.CurrentDate = deps.Now()
	}
	if initial.View == "" {
		initial.View = models.ViewMonth
	}
	if !initial.IsEventModalOpen {
		initial.SelectedEvent = nil
	}
	return &Store{
		state:  initial.Clone(),
		deps:   deps,
		logger: logger,
	}
}

// Dispatch applies one action and returns a snapshot of the resulting state.
// Subscribers are notified outside the lock with their own snapshot.
func (s *Store) Dispatch(action Action) models.CalendarState {
	s.mu.Lock()
	s.state = Reduce(s.state, action, s.deps)
	next := s.state.Clone()
	subs := s.subs
	s.mu.Unlock()

	s.logger.Debug("action dispatched",
		zap.String("action", ActionName(action)),
		zap.Int("events", len(next.Events)),
		zap.String("view", string(next.View)),
	)

	for _, notify := range subs {
		notify(next.Clone())
	}
	return next
}

// State returns a snapshot of the current state. The caller owns the copy.
func (s *Store) State() models.CalendarState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Subscribe registers an observer called after every dispatch with the
// resulting state snapshot.
func (s *Store) Subscribe(fn func(models.CalendarState)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
