package types

import (
	"bytes"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/berrythewa/clipstack/pkg/utils"
)

// ErrNoRepresentations is returned when a snapshot is constructed from an
// empty clipboard or one exposing zero readable representations.
var ErrNoRepresentations = errors.New("clipboard has no readable representations")

// Representation is one (content-type identifier, payload) pair as read from
// or written to a clipboard service. The slice order of representations
// reflects the source's priority order.
type Representation struct {
	Type string `json:"type"`
	Data []byte `json:"data"`
}

// Writer is the write half of a clipboard service, as much of it as a
// snapshot needs to put itself back on the clipboard. Write replaces the
// clipboard's prior contents with the given representations as one item.
type Writer interface {
	Write(reps []Representation) error
}

// Snapshot is an immutable capture of the clipboard at one instant: every
// readable representation, the source's type ordering, and the plain-text
// projection when one exists. Snapshots are only built through NewSnapshot
// and are never mutated afterwards.
type Snapshot struct {
	reps       map[string][]byte
	typeOrder  []string
	plainText  string
	textType   string
	hasText    bool
	capturedAt time.Time
	hash       string
}

// NewSnapshot builds a snapshot from the representations read off a
// clipboard. Zero-length payloads and repeated type identifiers are dropped
// (first occurrence wins). Returns ErrNoRepresentations when nothing
// readable remains; no snapshot is constructed in that case.
func NewSnapshot(reps []Representation) (*Snapshot, error) {
	s := &Snapshot{
		reps:       make(map[string][]byte, len(reps)),
		capturedAt: time.Now(),
	}
	for _, r := range reps {
		if r.Type == "" || len(r.Data) == 0 {
			continue
		}
		if _, dup := s.reps[r.Type]; dup {
			continue
		}
		data := make([]byte, len(r.Data))
		copy(data, r.Data)
		s.reps[r.Type] = data
		s.typeOrder = append(s.typeOrder, r.Type)
	}
	if len(s.typeOrder) == 0 {
		return nil, ErrNoRepresentations
	}
	for _, t := range s.typeOrder {
		if IsTextType(t) && utf8.Valid(s.reps[t]) {
			s.plainText = string(s.reps[t])
			s.textType = t
			s.hasText = true
			break
		}
	}
	s.hash = utils.ContentHash(s.canonicalBytes())
	return s, nil
}

// canonicalBytes folds every representation into one byte stream in type
// order so the hash is stable for identical content.
func (s *Snapshot) canonicalBytes() []byte {
	var buf bytes.Buffer
	for _, t := range s.typeOrder {
		buf.WriteString(t)
		buf.WriteByte(0)
		buf.Write(s.reps[t])
		buf.WriteByte(0)
	}
	return buf.Bytes()
}

// WriteBack places the snapshot's full set of representations on the target
// clipboard as a single item, replacing whatever was there. The write
// advances the target's change-version counter; callers restoring history
// arm suppression before calling this.
func (s *Snapshot) WriteBack(w Writer) error {
	return w.Write(s.Representations())
}

// Representations returns the snapshot's content as a fresh slice in source
// order. Payloads are copied so callers cannot reach the snapshot's state.
func (s *Snapshot) Representations() []Representation {
	out := make([]Representation, 0, len(s.typeOrder))
	for _, t := range s.typeOrder {
		data := make([]byte, len(s.reps[t]))
		copy(data, s.reps[t])
		out = append(out, Representation{Type: t, Data: data})
	}
	return out
}

// Types returns the content-type identifiers in source order.
func (s *Snapshot) Types() []string {
	out := make([]string, len(s.typeOrder))
	copy(out, s.typeOrder)
	return out
}

// Data returns a copy of the payload for the given type identifier.
func (s *Snapshot) Data(typeID string) ([]byte, bool) {
	data, ok := s.reps[typeID]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true
}

// PlainText returns the UTF-8 text projection and whether one was captured.
func (s *Snapshot) PlainText() (string, bool) {
	return s.plainText, s.hasText
}

// PreferredType is the identifier a consumer should read first: the text
// representation when present, else the first image type, else the first
// type the source reported.
func (s *Snapshot) PreferredType() string {
	if s.hasText {
		return s.textType
	}
	for _, t := range s.typeOrder {
		if IsImageType(t) {
			return t
		}
	}
	return s.typeOrder[0]
}

// Kind classifies the snapshot the same way Label picks its fallback tag:
// text only when the projection is non-blank, then the first matching kind
// in image, file, PDF, rich-text, HTML order.
func (s *Snapshot) Kind() Kind {
	if s.hasText && strings.TrimSpace(s.plainText) != "" {
		return KindText
	}
	return s.fallbackKind()
}

// CapturedAt is when the snapshot was taken. Diagnostics only; history
// ordering is insertion order, not time order.
func (s *Snapshot) CapturedAt() time.Time {
	return s.capturedAt
}

// Hash is a stable content digest across all representations, used for
// display and duplicate diagnostics, never for history deduplication.
func (s *Snapshot) Hash() string {
	return s.hash
}

// Size is the total payload size in bytes across all representations.
func (s *Snapshot) Size() int {
	n := 0
	for _, data := range s.reps {
		n += len(data)
	}
	return n
}

// Equal reports whether two snapshots carry identical content: the same
// types in the same order with byte-identical payloads.
func (s *Snapshot) Equal(other *Snapshot) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.typeOrder) != len(other.typeOrder) {
		return false
	}
	for i, t := range s.typeOrder {
		if other.typeOrder[i] != t {
			return false
		}
		if !bytes.Equal(s.reps[t], other.reps[t]) {
			return false
		}
	}
	return true
}
