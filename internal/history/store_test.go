package history

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berrythewa/clipstack/internal/types"
)

func textSnapshot(t *testing.T, text string) *types.Snapshot {
	t.Helper()
	snap, err := types.NewSnapshot([]types.Representation{
		{Type: types.TypePlainText, Data: []byte(text)},
	})
	require.NoError(t, err)
	return snap
}

func imageSnapshot(t *testing.T, payload []byte) *types.Snapshot {
	t.Helper()
	snap, err := types.NewSnapshot([]types.Representation{
		{Type: types.TypePNG, Data: payload},
	})
	require.NoError(t, err)
	return snap
}

func labels(items []*types.Snapshot) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = s.Label()
	}
	return out
}

// TestStoreOrder verifies newest-first indexing after successive pushes.
func TestStoreOrder(t *testing.T) {
	s := NewStore(10)

	a := textSnapshot(t, "alpha")
	b := textSnapshot(t, "beta")
	assert.True(t, s.Push(a))
	assert.True(t, s.Push(b))

	got, err := s.ItemAt(0)
	require.NoError(t, err)
	assert.Same(t, b, got)

	got, err = s.ItemAt(1)
	require.NoError(t, err)
	assert.Same(t, a, got)
}

// TestStoreCapacity verifies the bound holds and the oldest entry is the
// one evicted.
func TestStoreCapacity(t *testing.T) {
	s := NewStore(10)

	for i := 0; i < 10; i++ {
		require.True(t, s.Push(textSnapshot(t, fmt.Sprintf("item-%d", i))))
	}
	require.Equal(t, 10, s.Len())

	require.True(t, s.Push(textSnapshot(t, "item-10")))
	assert.Equal(t, 10, s.Len())

	want := []string{
		"item-10", "item-9", "item-8", "item-7", "item-6",
		"item-5", "item-4", "item-3", "item-2", "item-1",
	}
	if diff := cmp.Diff(want, labels(s.Items())); diff != "" {
		t.Errorf("history after overflow mismatch (-want +got):\n%s", diff)
	}

	// item-0 fell off the end.
	_, err := s.ItemAt(10)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

// TestStoreTextDedup verifies that an identical text pushed twice in a row
// collapses into one entry.
func TestStoreTextDedup(t *testing.T) {
	s := NewStore(10)

	assert.True(t, s.Push(textSnapshot(t, "hello")))
	assert.False(t, s.Push(textSnapshot(t, "hello")))
	assert.Equal(t, 1, s.Len())

	// A different text still lands, and the old text may then repeat.
	assert.True(t, s.Push(textSnapshot(t, "world")))
	assert.True(t, s.Push(textSnapshot(t, "hello")))
	assert.Equal(t, 3, s.Len())
}

// TestStoreNonTextNeverDeduped verifies byte-identical images are both kept.
func TestStoreNonTextNeverDeduped(t *testing.T) {
	s := NewStore(10)

	payload := []byte{0x89, 0x50, 0x4e, 0x47}
	assert.True(t, s.Push(imageSnapshot(t, payload)))
	assert.True(t, s.Push(imageSnapshot(t, payload)))
	assert.Equal(t, 2, s.Len())
}

// TestStoreDedupNeedsTextOnBothSides verifies an image following text (and
// the reverse) is never treated as a duplicate.
func TestStoreDedupNeedsTextOnBothSides(t *testing.T) {
	s := NewStore(10)

	assert.True(t, s.Push(textSnapshot(t, "hello")))
	assert.True(t, s.Push(imageSnapshot(t, []byte{1})))
	assert.True(t, s.Push(textSnapshot(t, "hello")))
	assert.Equal(t, 3, s.Len())
}

// TestStoreIndexBounds verifies ItemAt fails cleanly at both edges on
// stores of any size, including empty.
func TestStoreIndexBounds(t *testing.T) {
	s := NewStore(10)

	_, err := s.ItemAt(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = s.ItemAt(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	s.Push(textSnapshot(t, "only"))

	_, err = s.ItemAt(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = s.ItemAt(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = s.ItemAt(0)
	assert.NoError(t, err)
}

// TestStoreClear verifies clear empties the stack, leaves suppression
// alone, and a following push lands at index 0 as if fresh.
func TestStoreClear(t *testing.T) {
	s := NewStore(10)
	for i := 0; i < 10; i++ {
		s.Push(textSnapshot(t, fmt.Sprintf("item-%d", i)))
	}
	s.SuppressNext()

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.SuppressionPending())

	fresh := textSnapshot(t, "fresh")
	assert.True(t, s.Push(fresh))
	got, err := s.ItemAt(0)
	require.NoError(t, err)
	assert.Same(t, fresh, got)
	assert.Equal(t, 1, s.Len())
}

// TestStoreSuppressionConsumedOnce verifies one arming survives exactly one
// consumption.
func TestStoreSuppressionConsumedOnce(t *testing.T) {
	s := NewStore(10)

	assert.False(t, s.ConsumeSuppression())

	s.SuppressNext()
	assert.True(t, s.SuppressionPending())
	assert.True(t, s.ConsumeSuppression())
	assert.False(t, s.SuppressionPending())
	assert.False(t, s.ConsumeSuppression())
}

// TestStoreDisarmSuppression verifies backing out of an armed restore.
func TestStoreDisarmSuppression(t *testing.T) {
	s := NewStore(10)
	s.SuppressNext()
	s.DisarmSuppression()
	assert.False(t, s.ConsumeSuppression())
}

// TestStoreVersion verifies the mutation counter moves on pushes and clears
// but not on reads, failed pushes, or suppression changes.
func TestStoreVersion(t *testing.T) {
	s := NewStore(10)
	v0 := s.Version()

	s.Push(textSnapshot(t, "a"))
	v1 := s.Version()
	assert.Greater(t, v1, v0)

	// Deduplicated push leaves the store, and its version, alone.
	s.Push(textSnapshot(t, "a"))
	assert.Equal(t, v1, s.Version())

	s.SuppressNext()
	s.ConsumeSuppression()
	s.Items()
	assert.Equal(t, v1, s.Version())

	s.Clear()
	assert.Greater(t, s.Version(), v1)

	// Clearing an already empty store is not a mutation.
	v2 := s.Version()
	s.Clear()
	assert.Equal(t, v2, s.Version())
}

// TestStoreItemsIsPointInTime verifies the returned view does not track
// later mutations.
func TestStoreItemsIsPointInTime(t *testing.T) {
	s := NewStore(10)
	s.Push(textSnapshot(t, "before"))

	view := s.Items()
	s.Push(textSnapshot(t, "after"))

	require.Len(t, view, 1)
	assert.Equal(t, "before", view[0].Label())
	assert.Equal(t, 2, s.Len())
}

// TestStoreCapacityFallback verifies nonsense capacities degrade to the
// default.
func TestStoreCapacityFallback(t *testing.T) {
	assert.Equal(t, DefaultCapacity, NewStore(0).Capacity())
	assert.Equal(t, DefaultCapacity, NewStore(-3).Capacity())
	assert.Equal(t, 5, NewStore(5).Capacity())
}

// TestStoreNilPush verifies a nil snapshot is rejected without mutating.
func TestStoreNilPush(t *testing.T) {
	s := NewStore(10)
	assert.False(t, s.Push(nil))
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, uint64(0), s.Version())
}
