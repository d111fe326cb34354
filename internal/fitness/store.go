package fitness

import (
	"context"
	"fmt"
	"sync"

	"github.com/bersitedi/MyWorkoutPlanner/internal/errors"
)

// ErrSnapshotNotFound is returned by Store.Load when no snapshot exists under
// the requested key. First-time users hit this path and get DefaultState.
var ErrSnapshotNotFound = errors.NewSentinel("snapshot not found")

// Store persists JSON snapshots under string keys. Implementations must be
// safe for concurrent use.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, payload []byte) error
}

// StateKey is the snapshot key for a user's full planner state.
func StateKey(userID int64) string {
	return fmt.Sprintf("state_%d", userID)
}

// HistoryKey is the snapshot key for a user's workout history alone. History
// is written under its own key in addition to the full state so that it
// survives a state-schema reset.
func HistoryKey(userID int64) string {
	return fmt.Sprintf("history_%d", userID)
}

// MemoryStore is an in-memory Store for tests and ephemeral sessions.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: map[string][]byte{}}
}

func (s *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok := s.snapshots[key]
	if !ok {
		return nil, ErrSnapshotNotFound
	}
	cp := make([]byte, len(payload))
	copy(cp, payload)
	return cp, nil
}

func (s *MemoryStore) Save(_ context.Context, key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(payload))
	copy(cp, payload)
	s.snapshots[key] = cp
	return nil
}
