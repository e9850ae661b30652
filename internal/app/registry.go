package app

import (
	"sync"

	"github.com/replay-fm/replay-api/internal/ports"
	"github.com/replay-fm/replay-api/internal/stats"
)

// SnapshotRegistry maps session ids to their aggregate snapshots. Snapshots
// are immutable after build, so the registry only guards the map itself. It
// is safe for concurrent use.
type SnapshotRegistry struct {
	mu        sync.RWMutex
	snapshots map[string]*stats.Aggregate
	latest    string
}

// NewSnapshotRegistry creates an empty registry.
func NewSnapshotRegistry() *SnapshotRegistry {
	return &SnapshotRegistry{
		snapshots: make(map[string]*stats.Aggregate),
	}
}

// Put stores a snapshot and marks it as the most recent session.
func (r *SnapshotRegistry) Put(id string, agg *stats.Aggregate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots[id] = agg
	r.latest = id
}

// Get returns the snapshot for the given session id. An empty id selects the
// most recent session.
func (r *SnapshotRegistry) Get(id string) (*stats.Aggregate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if id == "" {
		id = r.latest
	}
	agg, ok := r.snapshots[id]
	if !ok {
		return nil, ports.ErrSessionNotFound
	}
	return agg, nil
}

// Len reports how many sessions are held.
func (r *SnapshotRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.snapshots)
}
