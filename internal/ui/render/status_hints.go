package render

import (
	"strings"

	statepkg "github.com/kk-code-lab/fv/internal/state"
)

// hintSeparator sits between key hints on the status line.
const hintSeparator = "  "

// statusHints returns the key hints for the state's current mode.
func statusHints(state *statepkg.ViewerState) []string {
	if state == nil {
		return nil
	}
	switch state.Mode.(type) {
	case statepkg.Capturing:
		return []string{"↵: jump", "Esc: cancel"}
	case statepkg.GoingToLine:
		return []string{"type: line", "↵: go", "Esc: cancel"}
	}
	if state.HelpVisible {
		return []string{"?/Esc: close"}
	}
	return []string{"?: help"}
}

// buildStatusHint joins the hints shown at the right end of the status line.
func buildStatusHint(state *statepkg.ViewerState) string {
	return strings.Join(statusHints(state), hintSeparator)
}
