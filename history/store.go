// Package history keeps the in-memory per-user intervention log backing
// the frequency cap. It is the only mutable state in the service.
package history

import (
	"sync"
	"time"

	"clementus360/nudge-coach/types"
)

// Store is safe for concurrent use; a single mutex serializes the
// read-modify-write on every user's log. Contention is negligible at the
// request rates this service sees.
type Store struct {
	mu     sync.Mutex
	max    int
	byUser map[string][]types.HistoryEntry
}

func NewStore(maxEntries int) *Store {
	if maxEntries <= 0 {
		maxEntries = 100
	}
	return &Store{
		max:    maxEntries,
		byUser: make(map[string][]types.HistoryEntry),
	}
}

// Record appends one delivered intervention, trimming the oldest entries
// beyond the configured maximum.
func (s *Store) Record(userID, templateID string, at time.Time) {
	if userID == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := append(s.byUser[userID], types.HistoryEntry{Timestamp: at, TemplateID: templateID})
	if len(entries) > s.max {
		entries = entries[len(entries)-s.max:]
	}
	s.byUser[userID] = entries
}

// Do runs fn while holding the store lock, passing a snapshot of the
// user's log. When fn returns a non-nil entry it is appended before the
// lock is released, so a frequency-cap check and the delivery record it
// guards form one atomic step: concurrent requests for the same user are
// serialized here.
func (s *Store) Do(userID string, fn func(history []types.HistoryEntry) *types.HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.byUser[userID]
	snapshot := make([]types.HistoryEntry, len(entries))
	copy(snapshot, entries)

	entry := fn(snapshot)
	if entry == nil || userID == "" {
		return
	}

	entries = append(entries, *entry)
	if len(entries) > s.max {
		entries = entries[len(entries)-s.max:]
	}
	s.byUser[userID] = entries
}

// Recent returns a copy of the user's log, oldest first.
func (s *Store) Recent(userID string) []types.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.byUser[userID]
	out := make([]types.HistoryEntry, len(entries))
	copy(out, entries)
	return out
}

func (s *Store) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byUser, userID)
}
