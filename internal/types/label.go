package types

import (
	"net/url"
	"path"
	"strings"
)

// labelMaxRunes bounds how much text a history entry shows before the
// remainder is elided.
const labelMaxRunes = 20

// Label derives the short human-readable tag for a history entry. Pure and
// deterministic for a given snapshot.
//
// Text wins when the snapshot carries a non-blank plain-text projection: the
// trimmed text verbatim when it fits, otherwise its first 20 runes followed
// by "...". Without usable text the label is a bracketed kind tag, checked
// in a fixed order because one payload may advertise several overlapping
// types: image first, then file URL, then PDF, then rich text, then HTML,
// then the generic fallback.
func (s *Snapshot) Label() string {
	if s.hasText {
		text := strings.TrimSpace(s.plainText)
		if text != "" {
			runes := []rune(text)
			if len(runes) <= labelMaxRunes {
				return text
			}
			return string(runes[:labelMaxRunes]) + "..."
		}
	}
	switch s.fallbackKind() {
	case KindImage:
		return "[Image]"
	case KindFile:
		return s.fileLabel()
	case KindPDF:
		return "[PDF]"
	case KindRich:
		return "[Rich Text]"
	case KindHTML:
		return "[HTML]"
	default:
		return "[Clipboard Data]"
	}
}

// fallbackKind scans the representations in the fixed kind precedence used
// by Label. Called only when no usable text projection exists.
func (s *Snapshot) fallbackKind() Kind {
	checks := []struct {
		match func(string) bool
		kind  Kind
	}{
		{IsImageType, KindImage},
		{IsFileURLType, KindFile},
		{IsPDFType, KindPDF},
		{IsRTFType, KindRich},
		{IsHTMLType, KindHTML},
	}
	for _, c := range checks {
		for _, t := range s.typeOrder {
			if c.match(t) {
				return c.kind
			}
		}
	}
	return KindOther
}

// fileLabel renders "[File: name]" from the file-URL payload, falling back
// to the bare tag when no base name can be recovered.
func (s *Snapshot) fileLabel() string {
	for _, t := range s.typeOrder {
		if !IsFileURLType(t) {
			continue
		}
		raw := strings.TrimSpace(string(s.reps[t]))
		// uri-list payloads may carry several lines; the first names the item.
		if i := strings.IndexAny(raw, "\r\n"); i >= 0 {
			raw = raw[:i]
		}
		name := fileBaseName(raw)
		if name != "" {
			return "[File: " + name + "]"
		}
	}
	return "[File]"
}

func fileBaseName(raw string) string {
	if raw == "" {
		return ""
	}
	target := raw
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		target = u.Path
	}
	base := path.Base(strings.TrimRight(target, "/"))
	if base == "." || base == "/" || base == "" {
		return ""
	}
	if unescaped, err := url.PathUnescape(base); err == nil {
		base = unescaped
	}
	return base
}
