// Package session keeps wizard sessions between requests. Sessions are
// ephemeral: they expire after a period of inactivity and are never
// written to the database.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/abhishek622/hirewizard/internal/wizard"
)

var ErrNotFound = errors.New("wizard session not found")

// Entry is one stored session.
type Entry struct {
	OwnerID  string          `json:"ownerId"`
	Snapshot wizard.Snapshot `json:"snapshot"`
}

type Store interface {
	Get(ctx context.Context, id string) (Entry, error)
	Save(ctx context.Context, id string, e Entry) error
	Delete(ctx context.Context, id string) error
}

type memoryItem struct {
	entry     Entry
	expiresAt time.Time
}

// MemoryStore keeps sessions in process. Expired entries are invisible to
// Get and removed by Sweep.
type MemoryStore struct {
	ttl time.Duration
	now func() time.Time

	mu    sync.Mutex
	items map[string]memoryItem
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, now: time.Now, items: make(map[string]memoryItem)}
}

func (s *MemoryStore) Get(_ context.Context, id string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok || !s.now().Before(it.expiresAt) {
		return Entry{}, ErrNotFound
	}
	return it.entry, nil
}

func (s *MemoryStore) Save(_ context.Context, id string, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.Snapshot.Record = e.Snapshot.Record.Clone()
	s.items[id] = memoryItem{entry: e, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

// Sweep drops every session that expired before now and reports how many.
func (s *MemoryStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, it := range s.items {
		if !now.Before(it.expiresAt) {
			delete(s.items, id)
			n++
		}
	}
	return n
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
