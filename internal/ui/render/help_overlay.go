package render

import (
	"fmt"
	"strings"

	textutil "github.com/kk-code-lab/fv/internal/textutil"
)

type helpOverlayEntry struct {
	keys string
	desc string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

var helpOverlaySections = []helpOverlaySection{
	{
		title: "Navigation",
		entries: []helpOverlayEntry{
			{keys: "↑/↓", desc: "Scroll one line (one match when filtering)"},
			{keys: "←/→", desc: "Scroll one column"},
			{keys: "Home/End", desc: "Leftmost / rightmost column"},
			{keys: "PgUp/PgDn", desc: "Scroll one page"},
			{keys: "Ctrl+PgUp/PgDn", desc: "Scroll ten pages"},
			{keys: "Ctrl+Home/End", desc: "Start / end of document"},
			{keys: "Ctrl+G", desc: "Go to line"},
			{keys: "Wheel", desc: "Scroll lines / columns"},
		},
	},
	{
		title: "Search",
		entries: []helpOverlayEntry{
			{keys: "/", desc: "Type a search pattern"},
			{keys: "↵", desc: "Jump to the next match of the pattern"},
			{keys: "Esc", desc: "Cancel the search"},
			{keys: "n / p", desc: "Next / previous match (wraps)"},
			{keys: "Ctrl+T", desc: "Show only matching lines"},
		},
	},
	{
		title: "View",
		entries: []helpOverlayEntry{
			{keys: "Ctrl+L", desc: "Toggle line numbers"},
		},
	},
	{
		title: "Exit",
		entries: []helpOverlayEntry{
			{keys: "q / Esc", desc: "Quit"},
			{keys: "Ctrl+C", desc: "Quit immediately"},
			{keys: "Ctrl+Z", desc: "Suspend to the shell"},
			{keys: "?", desc: "Close this help"},
		},
	},
}

func buildHelpOverlayLines() []string {
	lines := make([]string, 0, 32)
	for i, section := range helpOverlaySections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, formatHelpOverlayEntry(entry))
		}
	}
	return lines
}

func formatHelpOverlayEntry(entry helpOverlayEntry) string {
	key := textutil.SanitizeTerminalText(entry.keys)
	desc := textutil.SanitizeTerminalText(entry.desc)
	pad := 16 - textutil.DisplayWidth(key)
	if pad < 1 {
		pad = 1
	}
	return fmt.Sprintf("  %s%s%s", key, strings.Repeat(" ", pad), desc)
}

func (r *Renderer) drawHelpOverlay(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	baseStyle := r.theme.Style(RoleText)
	for y := 0; y < h; y++ {
		r.fillRow(y, w, baseStyle)
	}

	title := " Help "
	headerStyle := baseStyle.Background(r.theme.HelpTitleBg).Foreground(r.theme.HelpTitleFg).Bold(true)
	titleStart := 0
	titleWidth := textutil.DisplayWidth(title)
	if w > titleWidth {
		titleStart = (w - titleWidth) / 2
	}
	r.drawTextLine(titleStart, 0, w-titleStart, title, headerStyle)

	row := 2
	maxRow := h - 1
	for _, line := range buildHelpOverlayLines() {
		if row >= maxRow {
			break
		}
		text := strings.TrimRight(line, " ")
		text = r.truncateTextToWidth(text, w-4)
		r.drawTextLine(2, row, w-4, text, baseStyle)
		row++
	}

	footer := "? toggle · Esc/q close"
	if h > 1 {
		r.fillRow(h-1, w, headerStyle)
		r.drawTextLine(0, h-1, w, r.truncateTextToWidth(footer, w), headerStyle)
	}
}
