package websocket

import (
	"sync"

	"github.com/edupath/admissions/internal/pkg/metrics"
)

const defaultShardCount = 32

type shard struct {
	mu       sync.RWMutex
	channels map[int64]Channel
}

// Registry maps a user ID to that user's most recently registered channel.
// It is safe for concurrent use; no lock is held while a channel does I/O.
type Registry struct {
	shards []*shard
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return NewShardedRegistry(defaultShardCount)
}

// NewShardedRegistry creates an empty registry with n shards.
func NewShardedRegistry(n int) *Registry {
	if n <= 0 {
		n = defaultShardCount
	}
	r := &Registry{shards: make([]*shard, n)}
	for i := range r.shards {
		r.shards[i] = &shard{channels: make(map[int64]Channel)}
	}
	return r
}

func (r *Registry) shardFor(userID int64) *shard {
	return r.shards[uint64(userID)%uint64(len(r.shards))]
}

// Register makes ch the user's current channel and returns the channel it
// superseded, if any. The superseded channel is left open.
func (r *Registry) Register(userID int64, ch Channel) Channel {
	s := r.shardFor(userID)

	s.mu.Lock()
	previous, existed := s.channels[userID]
	s.channels[userID] = ch
	s.mu.Unlock()

	if !existed {
		metrics.WebsocketConnections.Inc()
	}
	return previous
}

// Unregister removes whatever channel the user has. Removing an absent user is a no-op.
func (r *Registry) Unregister(userID int64) {
	s := r.shardFor(userID)

	s.mu.Lock()
	_, existed := s.channels[userID]
	delete(s.channels, userID)
	s.mu.Unlock()

	if existed {
		metrics.WebsocketConnections.Dec()
	}
}

// Release removes the user's entry only if it is still ch. It reports whether
// an entry was removed.
func (r *Registry) Release(userID int64, ch Channel) bool {
	s := r.shardFor(userID)

	s.mu.Lock()
	current, ok := s.channels[userID]
	released := ok && current == ch
	if released {
		delete(s.channels, userID)
	}
	s.mu.Unlock()

	if released {
		metrics.WebsocketConnections.Dec()
	}
	return released
}

// Lookup returns the user's current channel.
func (r *Registry) Lookup(userID int64) (Channel, bool) {
	s := r.shardFor(userID)

	s.mu.RLock()
	defer s.mu.RUnlock()

	ch, ok := s.channels[userID]
	return ch, ok
}

// Count returns the number of users with a registered channel.
func (r *Registry) Count() int {
	total := 0
	for _, s := range r.shards {
		s.mu.RLock()
		total += len(s.channels)
		s.mu.RUnlock()
	}
	return total
}
