package history

import (
	"errors"
	"fmt"
	"sync"

	"github.com/berrythewa/clipstack/internal/types"
)

// DefaultCapacity is how many snapshots the store retains unless configured
// otherwise.
const DefaultCapacity = 10

// ErrIndexOutOfRange is returned by ItemAt when the index does not name a
// stored snapshot, typically because a consumer held on to a stale index
// across a push or clear.
var ErrIndexOutOfRange = errors.New("history index out of range")

// Store is the bounded in-memory clipboard history. Index 0 is the most
// recent capture; insertion always happens at the front and overflow evicts
// from the back. The store also carries the suppression flag the observer
// consults to keep restore-writes from re-entering history. All access is
// serialized through one mutex; nothing here is long-blocking.
//
// History lives for the process lifetime only. Nothing is persisted.
type Store struct {
	mu           sync.Mutex
	items        []*types.Snapshot
	capacity     int
	suppressNext bool
	version      uint64
}

// NewStore creates an empty store holding at most capacity snapshots.
// Values below 1 fall back to DefaultCapacity.
func NewStore(capacity int) *Store {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Store{
		items:    make([]*types.Snapshot, 0, capacity),
		capacity: capacity,
	}
}

// Push inserts a snapshot at index 0 and reports whether the store changed.
//
// Consecutive text duplicates collapse: when the current head carries a
// non-empty plain-text projection equal, character for character, to the
// incoming snapshot's, the push is a no-op. That guards against repeated
// notifications for the same unchanged text. Non-text content is never
// deduplicated; byte-identical images push fine. After insertion anything
// past capacity is evicted from the oldest end.
func (s *Store) Push(snap *types.Snapshot) bool {
	if snap == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) > 0 {
		headText, headHas := s.items[0].PlainText()
		inText, inHas := snap.PlainText()
		if headHas && inHas && headText != "" && headText == inText {
			return false
		}
	}

	s.items = append(s.items, nil)
	copy(s.items[1:], s.items)
	s.items[0] = snap

	for len(s.items) > s.capacity {
		last := len(s.items) - 1
		s.items[last] = nil
		s.items = s.items[:last]
	}

	s.version++
	return true
}

// ItemAt returns the snapshot at index, 0 being the most recent. Fails with
// ErrIndexOutOfRange for any index outside [0, Len()) and has no side
// effects on failure.
func (s *Store) ItemAt(index int) (*types.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.items) {
		return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, len(s.items))
	}
	return s.items[index], nil
}

// Items returns the current ordered view, newest first. The slice is a
// fresh copy taken under the lock; it does not track later pushes or
// clears, so treat it as a point-in-time read.
func (s *Store) Items() []*types.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*types.Snapshot, len(s.items))
	copy(out, s.items)
	return out
}

// Len is the number of snapshots currently held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Capacity is the configured maximum history depth.
func (s *Store) Capacity() int {
	return s.capacity
}

// Clear empties the history. The suppression flag is left untouched; a
// pending restore-write suppression survives a clear.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return
	}
	for i := range s.items {
		s.items[i] = nil
	}
	s.items = s.items[:0]
	s.version++
}

// SuppressNext arms the self-change suppression flag. The next observed
// clipboard change should be treated as the echo of a restore-write and
// skipped instead of captured.
func (s *Store) SuppressNext() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suppressNext = true
}

// ConsumeSuppression clears the suppression flag and reports whether it was
// set. Exactly one observed change consumes one arming.
func (s *Store) ConsumeSuppression() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	was := s.suppressNext
	s.suppressNext = false
	return was
}

// SuppressionPending reports the flag without clearing it.
func (s *Store) SuppressionPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.suppressNext
}

// DisarmSuppression clears the flag without reporting. Used to back out of
// an armed restore whose clipboard write never happened.
func (s *Store) DisarmSuppression() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suppressNext = false
}

// Version is a counter that advances on every content mutation (push,
// clear). Pollers compare versions to learn whether the history changed
// since they last looked, the same trick the clipboard service itself uses.
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}
