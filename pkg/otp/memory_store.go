package otp

import (
	"context"
	"sync"
)

// MemoryStore keeps OTP entries in a process-local map. A single mutex
// guards the whole map; operations are O(1) and short-lived, which keeps
// each code consumable at most once under concurrent access.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]Entry
}

// NewMemoryStore creates a new in-memory OTP store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry)}
}

// Save stores an entry, overwriting any prior entry for the contact
func (s *MemoryStore) Save(_ context.Context, contact string, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[contact] = entry
	return nil
}

// Load returns the live entry for a contact, or ErrNotFound
func (s *MemoryStore) Load(_ context.Context, contact string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[contact]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return entry, nil
}

// Delete removes the entry for a contact, if any
func (s *MemoryStore) Delete(_ context.Context, contact string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, contact)
	return nil
}

// CompareAndDelete removes the entry only if its code matches, atomically
func (s *MemoryStore) CompareAndDelete(_ context.Context, contact, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[contact]
	if !ok || entry.Code != code {
		return false, nil
	}
	delete(s.entries, contact)
	return true, nil
}
