package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureWriter records what WriteBack hands to a clipboard.
type captureWriter struct {
	reps []Representation
}

func (w *captureWriter) Write(reps []Representation) error {
	w.reps = reps
	return nil
}

// TestNewSnapshotRejectsEmpty verifies that construction fails without
// creating an object when nothing readable is on the clipboard.
func TestNewSnapshotRejectsEmpty(t *testing.T) {
	cases := []struct {
		name string
		reps []Representation
	}{
		{"nil input", nil},
		{"no representations", []Representation{}},
		{"empty payloads only", []Representation{
			{Type: TypePlainText, Data: nil},
			{Type: TypePNG, Data: []byte{}},
		}},
		{"missing type identifier", []Representation{
			{Type: "", Data: []byte("orphan")},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap, err := NewSnapshot(tc.reps)
			assert.Nil(t, snap)
			assert.ErrorIs(t, err, ErrNoRepresentations)
		})
	}
}

// TestNewSnapshotCollapsesDuplicates verifies that repeated type identifiers
// keep their first payload and that source order is preserved.
func TestNewSnapshotCollapsesDuplicates(t *testing.T) {
	snap, err := NewSnapshot([]Representation{
		{Type: TypeHTML, Data: []byte("<b>first</b>")},
		{Type: TypePlainText, Data: []byte("first")},
		{Type: TypePlainText, Data: []byte("second")},
		{Type: "", Data: []byte("dropped")},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{TypeHTML, TypePlainText}, snap.Types())

	text, ok := snap.PlainText()
	assert.True(t, ok)
	assert.Equal(t, "first", text)
}

// TestNewSnapshotTextProjection covers the optional plain-text capture.
func TestNewSnapshotTextProjection(t *testing.T) {
	t.Run("valid utf8 text", func(t *testing.T) {
		snap, err := NewSnapshot([]Representation{
			{Type: TypePlainText, Data: []byte("héllo")},
		})
		require.NoError(t, err)
		text, ok := snap.PlainText()
		assert.True(t, ok)
		assert.Equal(t, "héllo", text)
	})

	t.Run("invalid utf8 leaves projection unset", func(t *testing.T) {
		snap, err := NewSnapshot([]Representation{
			{Type: TypePlainText, Data: []byte{0xff, 0xfe, 0xfd}},
		})
		require.NoError(t, err)
		_, ok := snap.PlainText()
		assert.False(t, ok)
	})

	t.Run("no text representation", func(t *testing.T) {
		snap, err := NewSnapshot([]Representation{
			{Type: TypePNG, Data: []byte{0x89, 0x50}},
		})
		require.NoError(t, err)
		_, ok := snap.PlainText()
		assert.False(t, ok)
	})
}

// TestSnapshotDefensiveCopies verifies the snapshot cannot be mutated
// through the input slice or through accessor results.
func TestSnapshotDefensiveCopies(t *testing.T) {
	input := []Representation{
		{Type: TypePlainText, Data: []byte("stable")},
	}
	snap, err := NewSnapshot(input)
	require.NoError(t, err)

	// Scribbling over the caller's buffer must not reach the snapshot.
	input[0].Data[0] = 'X'
	text, _ := snap.PlainText()
	assert.Equal(t, "stable", text)

	// Same for data handed back out.
	out, ok := snap.Data(TypePlainText)
	require.True(t, ok)
	out[0] = 'Y'
	again, _ := snap.Data(TypePlainText)
	assert.Equal(t, []byte("stable"), again)

	reps := snap.Representations()
	reps[0].Data[0] = 'Z'
	final, _ := snap.Data(TypePlainText)
	assert.Equal(t, []byte("stable"), final)
}

// TestSnapshotPreferredType checks the read-priority rules: text first,
// then the first image type, then whatever the source listed first.
func TestSnapshotPreferredType(t *testing.T) {
	cases := []struct {
		name string
		reps []Representation
		want string
	}{
		{
			"text wins over earlier image",
			[]Representation{
				{Type: TypePNG, Data: []byte{1}},
				{Type: TypePlainText, Data: []byte("t")},
			},
			TypePlainText,
		},
		{
			"first image without text",
			[]Representation{
				{Type: TypeHTML, Data: []byte("<p>")},
				{Type: TypeTIFF, Data: []byte{1}},
				{Type: TypePNG, Data: []byte{2}},
			},
			TypeTIFF,
		},
		{
			"source order fallback",
			[]Representation{
				{Type: TypeRTF, Data: []byte("{\\rtf}")},
				{Type: TypeHTML, Data: []byte("<p>")},
			},
			TypeRTF,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap, err := NewSnapshot(tc.reps)
			require.NoError(t, err)
			assert.Equal(t, tc.want, snap.PreferredType())
		})
	}
}

// TestSnapshotWriteBack verifies the full representation set reaches the
// clipboard in source order.
func TestSnapshotWriteBack(t *testing.T) {
	snap, err := NewSnapshot([]Representation{
		{Type: TypePlainText, Data: []byte("copy me")},
		{Type: TypeHTML, Data: []byte("<b>copy me</b>")},
	})
	require.NoError(t, err)

	w := &captureWriter{}
	require.NoError(t, snap.WriteBack(w))

	require.Len(t, w.reps, 2)
	assert.Equal(t, TypePlainText, w.reps[0].Type)
	assert.Equal(t, []byte("copy me"), w.reps[0].Data)
	assert.Equal(t, TypeHTML, w.reps[1].Type)
	assert.Equal(t, []byte("<b>copy me</b>"), w.reps[1].Data)
}

// TestSnapshotEqual compares snapshots by content.
func TestSnapshotEqual(t *testing.T) {
	a, err := NewSnapshot([]Representation{{Type: TypePNG, Data: []byte{1, 2, 3}}})
	require.NoError(t, err)
	b, err := NewSnapshot([]Representation{{Type: TypePNG, Data: []byte{1, 2, 3}}})
	require.NoError(t, err)
	c, err := NewSnapshot([]Representation{{Type: TypePNG, Data: []byte{9, 9, 9}}})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))

	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())
}

// TestSnapshotKind checks the coarse classification used by listings.
func TestSnapshotKind(t *testing.T) {
	cases := []struct {
		name string
		reps []Representation
		want Kind
	}{
		{"text", []Representation{{Type: TypePlainText, Data: []byte("hi")}}, KindText},
		{"blank text falls through", []Representation{
			{Type: TypePlainText, Data: []byte("   ")},
			{Type: TypePNG, Data: []byte{1}},
		}, KindImage},
		{"image", []Representation{{Type: TypePNG, Data: []byte{1}}}, KindImage},
		{"file", []Representation{{Type: TypeFileURL, Data: []byte("file:///tmp/a")}}, KindFile},
		{"pdf", []Representation{{Type: TypePDF, Data: []byte{1}}}, KindPDF},
		{"unclassified", []Representation{{Type: "com.example.custom", Data: []byte{1}}}, KindOther},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap, err := NewSnapshot(tc.reps)
			require.NoError(t, err)
			assert.Equal(t, tc.want, snap.Kind())
		})
	}
}

// TestSnapshotSize sums payload bytes across representations.
func TestSnapshotSize(t *testing.T) {
	snap, err := NewSnapshot([]Representation{
		{Type: TypePlainText, Data: []byte("abcd")},
		{Type: TypePNG, Data: []byte{1, 2, 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, 7, snap.Size())
}
