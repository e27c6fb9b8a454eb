package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berrythewa/clipstack/internal/types"
)

// TestMemoryVersionAdvancesPerWrite verifies every write bumps the counter,
// identical content included.
func TestMemoryVersionAdvancesPerWrite(t *testing.T) {
	clip := NewMemory()

	v0, err := clip.Version()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v0)

	require.NoError(t, clip.Write(textReps("same")))
	v1, _ := clip.Version()
	require.NoError(t, clip.Write(textReps("same")))
	v2, _ := clip.Version()

	assert.Equal(t, v0+1, v1)
	assert.Equal(t, v1+1, v2)
}

// TestMemoryWriteReplacesEverything verifies a write is a full replace, not
// a merge.
func TestMemoryWriteReplacesEverything(t *testing.T) {
	clip := NewMemory()

	require.NoError(t, clip.Write([]types.Representation{
		{Type: types.TypePlainText, Data: []byte("text")},
		{Type: types.TypeHTML, Data: []byte("<p>text</p>")},
	}))
	require.NoError(t, clip.Write([]types.Representation{
		{Type: types.TypePNG, Data: []byte{0x89}},
	}))

	reps, err := clip.Read()
	require.NoError(t, err)
	require.Len(t, reps, 1)
	assert.Equal(t, types.TypePNG, reps[0].Type)
}

// TestMemoryReadIsolation verifies readers cannot mutate stored content.
func TestMemoryReadIsolation(t *testing.T) {
	clip := NewMemory()
	require.NoError(t, clip.Write(textReps("original")))

	reps, err := clip.Read()
	require.NoError(t, err)
	reps[0].Data[0] = 'X'

	again, err := clip.Read()
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again[0].Data)
}

// TestMemoryEmptyRead verifies a fresh clipboard reads as empty without
// erroring.
func TestMemoryEmptyRead(t *testing.T) {
	clip := NewMemory()
	reps, err := clip.Read()
	require.NoError(t, err)
	assert.Empty(t, reps)
	assert.NoError(t, clip.Close())
}
