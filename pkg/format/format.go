package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/berrythewa/clipstack/internal/clipboard"
	"github.com/berrythewa/clipstack/internal/ipc"
	"github.com/berrythewa/clipstack/internal/types"
	"github.com/berrythewa/clipstack/pkg/utils"
)

// Formatter renders IPC payloads for terminal display.
type Formatter struct {
	options Options
}

// New creates a formatter with the given options.
func New(opts Options) *Formatter {
	return &Formatter{options: opts}
}

// NewDefault creates a formatter with default options.
func NewDefault() *Formatter {
	return New(DefaultOptions())
}

// FormatList renders a history listing, newest entry first.
func (f *Formatter) FormatList(list ipc.HistoryList) string {
	if len(list.Items) == 0 {
		return ColorizeIf("Clipboard history is empty", Gray, f.options.UseColors)
	}

	var parts []string
	title := fmt.Sprintf("Clipboard History (%d of %d slots)", len(list.Items), list.Capacity)
	parts = append(parts, BoldIf(title, f.options.UseColors))
	parts = append(parts, "")

	for _, item := range list.Items {
		parts = append(parts, f.FormatSummary(item))
	}
	return strings.Join(parts, "\n")
}

// FormatSummary renders one history entry as a single line.
func (f *Formatter) FormatSummary(item ipc.ItemSummary) string {
	var b strings.Builder

	b.WriteString(BoldIf(fmt.Sprintf("[%d]", item.Index), f.options.UseColors))
	b.WriteString(" ")
	b.WriteString(f.kindTag(types.Kind(item.Kind)))
	b.WriteString(" ")

	label := item.Label
	if f.options.MaxWidth > 0 {
		label = TruncateText(label, f.options.MaxWidth)
	}
	b.WriteString(label)

	if f.options.ShowMetadata {
		meta := fmt.Sprintf("%s · %s",
			FormatSize(int64(item.Size)),
			FormatRelativeTime(item.CapturedAt))
		b.WriteString("  ")
		b.WriteString(DimIf(meta, f.options.UseColors))
	}
	return b.String()
}

// FormatDetail renders one entry with metadata and content body.
func (f *Formatter) FormatDetail(det ipc.ItemDetail) string {
	var parts []string

	parts = append(parts, f.kindTag(types.Kind(det.Kind))+" "+BoldIf(det.Label, f.options.UseColors))

	if f.options.ShowMetadata {
		meta := []string{
			"Captured: " + FormatRelativeTime(det.CapturedAt),
			"Size: " + FormatSize(int64(det.Size)),
		}
		if det.Hash != "" {
			meta = append(meta, "Hash: "+utils.ShortHash(det.Hash))
		}
		parts = append(parts, DimIf(strings.Join(meta, " · "), f.options.UseColors))
		parts = append(parts, DimIf("Types: "+strings.Join(det.Types, ", "), f.options.UseColors))
	}

	if body := f.formatBody(det); body != "" {
		parts = append(parts, "")
		parts = append(parts, CreateBox("Content", body, f.options))
	}
	return strings.Join(parts, "\n")
}

// FormatStatus renders a daemon status report.
func (f *Formatter) FormatStatus(info ipc.StatusInfo) string {
	var parts []string

	title := fmt.Sprintf("Daemon running (pid %d) on %s", info.PID, info.DeviceName)
	parts = append(parts, BoldIf(title, f.options.UseColors))

	rows := [][2]string{
		{"Socket", info.SocketPath},
		{"Uptime", FormatDuration(time.Since(info.StartedAt))},
		{"History", fmt.Sprintf("%d/%d items (version %d)",
			info.HistoryItems, info.HistoryCapacity, info.HistoryVersion)},
		{"Monitor", f.monitorSummary(info.Monitor)},
	}
	for _, row := range rows {
		parts = append(parts, fmt.Sprintf("  %-9s %s", row[0]+":", row[1]))
	}
	return strings.Join(parts, "\n")
}

func (f *Formatter) monitorSummary(st clipboard.MonitorStatus) string {
	state := "running"
	if !st.Running {
		state = "stopped"
	}

	s := fmt.Sprintf("%s · %d captures · %d deduplicated · %d suppressed · %d restores",
		state, st.Captures, st.Deduplicated, st.Suppressed, st.Restores)
	if st.ErrorCount > 0 {
		s += fmt.Sprintf(" · %d errors (last: %s)", st.ErrorCount, st.LastError)
	}
	return s
}

func (f *Formatter) kindTag(kind types.Kind) string {
	var parts []string

	if f.options.UseIcons {
		if icon, ok := KindIcons[kind]; ok {
			parts = append(parts, icon)
		}
	}

	name := fmt.Sprintf("%-9s", string(kind))
	if color, ok := KindColors[kind]; ok {
		name = ColorizeIf(name, color, f.options.UseColors)
	}
	parts = append(parts, name)

	return strings.Join(parts, " ")
}

// formatBody renders the text content when there is any, and otherwise a
// per-representation inventory.
func (f *Formatter) formatBody(det ipc.ItemDetail) string {
	if det.PlainText != "" {
		body := det.PlainText
		if f.options.MaxLines > 0 {
			body = TruncateLines(body, f.options.MaxLines)
		}
		if f.options.MaxWidth > 0 {
			lines := strings.Split(body, "\n")
			for i, line := range lines {
				lines[i] = TruncateText(line, f.options.MaxWidth)
			}
			body = strings.Join(lines, "\n")
		}
		return body
	}

	var descs []string
	for _, rep := range det.Representations {
		descs = append(descs, fmt.Sprintf("%-9s %s (%s)",
			types.KindOf(rep.Type), rep.Type, FormatSize(int64(len(rep.Data)))))
	}
	return strings.Join(descs, "\n")
}
