package utils

import (
	"strings"
	"testing"
)

func TestContentHash(t *testing.T) {
	h := ContentHash([]byte("hello"))

	// sha256("hello")
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	if h != want {
		t.Errorf("ContentHash = %s, want %s", h, want)
	}

	if ContentHash([]byte("hello")) != h {
		t.Error("ContentHash should be deterministic")
	}
	if ContentHash([]byte("hello!")) == h {
		t.Error("different content should hash differently")
	}
}

func TestContentHashEmpty(t *testing.T) {
	h := ContentHash(nil)
	if len(h) != 64 {
		t.Errorf("hash length = %d, want 64", len(h))
	}
	if h != ContentHash([]byte{}) {
		t.Error("nil and empty slices should hash identically")
	}
}

func TestShortHash(t *testing.T) {
	full := ContentHash([]byte("clipboard"))
	short := ShortHash(full)

	if len(short) != 12 {
		t.Errorf("ShortHash length = %d, want 12", len(short))
	}
	if !strings.HasPrefix(full, short) {
		t.Errorf("ShortHash %s is not a prefix of %s", short, full)
	}

	if got := ShortHash("abc"); got != "abc" {
		t.Errorf("ShortHash of a short string = %s, want it unchanged", got)
	}
}
