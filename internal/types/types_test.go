package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		id   string
		want Kind
	}{
		{TypePlainText, KindText},
		{"text/plain;charset=utf-8", KindText},
		{TypePNG, KindImage},
		{TypeTIFF, KindImage},
		{"image/webp", KindImage},
		{TypeFileURL, KindFile},
		{"text/uri-list", KindFile},
		{TypePDF, KindPDF},
		{"application/pdf", KindPDF},
		{TypeRTF, KindRich},
		{TypeHTML, KindHTML},
		{"text/html", KindHTML},
		{"application/x-proprietary", KindOther},
		{"", KindOther},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, KindOf(tc.id), "KindOf(%q)", tc.id)
	}
}
