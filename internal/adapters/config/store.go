package config

import (
	"sync"

	"github.com/leashdev/leash/internal/core/domain"
)

// Store holds the current settings snapshot and fans out change
// notifications. It is the inbound end of the configuration-signal
// contract: whoever owns the settings UI calls Update, and registered
// listeners (the resolver cache, in practice) react.
type Store struct {
	mu        sync.RWMutex
	current   domain.Settings
	listeners []func()
}

// NewStore creates a Store seeded with the given settings.
func NewStore(s domain.Settings) *Store {
	return &Store{current: s}
}

// Current returns the current settings snapshot.
func (s *Store) Current() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update replaces the settings and notifies every listener.
func (s *Store) Update(next domain.Settings) {
	s.mu.Lock()
	s.current = next
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	// Listeners run outside the lock; they may call back into Current.
	for _, fn := range listeners {
		fn()
	}
}

// OnChange registers a callback invoked after every Update.
func (s *Store) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
