// Package memstore is an in-process NoteStore, used by tests and the
// --ephemeral mode.
package memstore

import (
	"sync"

	"github.com/idilsaglam/reminders/internal/store"
)

type Store struct {
	mu   sync.RWMutex
	data map[string]string
}

func New() *Store {
	return &Store{data: map[string]string{}}
}

// Seed builds a store pre-populated with values.
func Seed(values map[string]string) *Store {
	s := New()
	for k, v := range values {
		s.data[k] = v
	}
	return s
}

func (s *Store) Get(key, def string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.data[key]; ok {
		return v, nil
	}
	return def, nil
}

func (s *Store) Set(key, value string) error {
	if err := store.CheckText(key, value); err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key] = value
	s.mu.Unlock()
	return nil
}

func (s *Store) Remove(key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

// Has reports whether key is present, distinguishing "" from absent.
func (s *Store) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[key]
	return ok
}

// Len is the number of stored keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
