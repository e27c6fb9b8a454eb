package types

import "strings"

// Content-type identifiers as reported by clipboard services. Identifiers
// follow the UTI naming the macOS pasteboard uses; platform backends that
// speak MIME normalize through the Kind classifiers below instead.
const (
	TypePlainText = "public.utf8-plain-text"
	TypePNG       = "public.png"
	TypeTIFF      = "public.tiff"
	TypeJPEG      = "public.jpeg"
	TypeFileURL   = "public.file-url"
	TypePDF       = "com.adobe.pdf"
	TypeRTF       = "public.rtf"
	TypeHTML      = "public.html"
)

// Kind is the coarse classification of a snapshot's content, used for
// display labels, icons and IPC listings.
type Kind string

const (
	KindText  Kind = "text"
	KindImage Kind = "image"
	KindFile  Kind = "file"
	KindPDF   Kind = "pdf"
	KindRich  Kind = "rich-text"
	KindHTML  Kind = "html"
	KindOther Kind = "data"
)

// IsTextType reports whether the identifier names a plain-text representation.
func IsTextType(t string) bool {
	switch t {
	case TypePlainText, "public.text", "public.plain-text", "text/plain":
		return true
	}
	return strings.HasPrefix(t, "text/plain;")
}

// IsImageType reports whether the identifier names an image representation.
func IsImageType(t string) bool {
	switch t {
	case TypePNG, TypeTIFF, TypeJPEG:
		return true
	}
	return strings.HasPrefix(t, "image/")
}

// IsFileURLType reports whether the identifier names a file reference.
func IsFileURLType(t string) bool {
	return t == TypeFileURL || t == "text/uri-list"
}

// IsPDFType reports whether the identifier names a PDF representation.
func IsPDFType(t string) bool {
	return t == TypePDF || t == "application/pdf"
}

// IsRTFType reports whether the identifier names a rich-text representation.
func IsRTFType(t string) bool {
	return t == TypeRTF || t == "application/rtf" || t == "text/rtf"
}

// IsHTMLType reports whether the identifier names an HTML representation.
func IsHTMLType(t string) bool {
	return t == TypeHTML || t == "text/html"
}

// KindOf classifies a single content-type identifier.
func KindOf(t string) Kind {
	switch {
	case IsTextType(t):
		return KindText
	case IsImageType(t):
		return KindImage
	case IsFileURLType(t):
		return KindFile
	case IsPDFType(t):
		return KindPDF
	case IsRTFType(t):
		return KindRich
	case IsHTMLType(t):
		return KindHTML
	default:
		return KindOther
	}
}
