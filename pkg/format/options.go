package format

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/berrythewa/clipstack/internal/types"
)

// Options controls formatting behavior.
type Options struct {
	UseColors    bool
	UseIcons     bool
	MaxWidth     int  // max label/content width (0 = no limit)
	MaxLines     int  // max content lines (0 = no limit)
	ShowMetadata bool // show timestamps, sizes, hashes
	Compact      bool // single-line entries
}

// DefaultOptions returns defaults tuned to the output destination: colors
// and icons only when stdout is a terminal and NO_COLOR is unset.
func DefaultOptions() Options {
	interactive := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if os.Getenv("NO_COLOR") != "" {
		interactive = false
	}

	return Options{
		UseColors:    interactive,
		UseIcons:     interactive,
		MaxWidth:     80,
		MaxLines:     10,
		ShowMetadata: true,
		Compact:      false,
	}
}

// CompactOptions returns options for compact single-line display.
func CompactOptions() Options {
	opts := DefaultOptions()
	opts.Compact = true
	opts.ShowMetadata = false
	opts.MaxLines = 1
	return opts
}

// KindIcons maps content kinds to icons for terminal display.
var KindIcons = map[types.Kind]string{
	types.KindText:  "📝",
	types.KindImage: "🖼️",
	types.KindFile:  "📁",
	types.KindPDF:   "📄",
	types.KindRich:  "📄",
	types.KindHTML:  "🌐",
	types.KindOther: "📎",
}

// KindColors maps content kinds to colors.
var KindColors = map[types.Kind]string{
	types.KindText:  Cyan,
	types.KindImage: Magenta,
	types.KindFile:  Yellow,
	types.KindPDF:   Gray,
	types.KindRich:  Gray,
	types.KindHTML:  Green,
	types.KindOther: White,
}
