package render

import (
	"strconv"

	textutil "github.com/kk-code-lab/fv/internal/textutil"
)

// CellScale is the number of canvas pixels per character cell.
type CellScale struct {
	X int
	Y int
}

// DefaultCellScale is the 2x4 braille-style canvas resolution.
func DefaultCellScale() CellScale {
	return CellScale{X: 2, Y: 4}
}

func (s CellScale) normalized() CellScale {
	if s.X <= 0 {
		s.X = 1
	}
	if s.Y <= 0 {
		s.Y = 1
	}
	return s
}

// Role selects the color of a draw instruction.
type Role int

const (
	RoleText Role = iota
	RoleLineNumber
	RoleLineNumberMatched
	RoleHighlight
	RoleStatusPosition
	RoleStatusPrompt
	RoleStatusPattern
	RoleStatusInfo
)

func (r Role) String() string {
	switch r {
	case RoleLineNumber:
		return "line-number"
	case RoleLineNumberMatched:
		return "line-number-matched"
	case RoleHighlight:
		return "highlight"
	case RoleStatusPosition:
		return "status-position"
	case RoleStatusPrompt:
		return "status-prompt"
	case RoleStatusPattern:
		return "status-pattern"
	case RoleStatusInfo:
		return "status-info"
	default:
		return "text"
	}
}

// DrawInstruction places Text with its top-left corner at pixel (X, Y).
type DrawInstruction struct {
	X    int
	Y    int
	Text string
	Role Role
}

// Status line columns, in cells.
const (
	statusPromptColumn  = 15
	statusPatternColumn = 16
)

// Instructions lays the frame out as pixel-addressed draw instructions. Later
// instructions paint over earlier ones, so highlights follow their row text.
func (f Frame) Instructions(scale CellScale) []DrawInstruction {
	scale = scale.normalized()
	if f.Width <= 0 || f.Height <= 0 {
		return nil
	}

	out := make([]DrawInstruction, 0, len(f.Rows)*2+4)
	for y, row := range f.Rows {
		py := y * scale.Y
		if f.MarginWidth > 0 {
			role := RoleLineNumber
			if row.Matched {
				role = RoleLineNumberMatched
			}
			number := textutil.ClipToWidth(strconv.Itoa(row.Number), f.MarginWidth)
			out = append(out, DrawInstruction{X: 0, Y: py, Text: number, Role: role})
		}
		contentX := f.MarginWidth * scale.X
		if row.Text != "" {
			out = append(out, DrawInstruction{X: contentX, Y: py, Text: row.Text, Role: RoleText})
		}
		for _, sp := range row.Highlights {
			text := sliceColumns(row.Text, sp.Start, sp.End)
			if text == "" {
				continue
			}
			out = append(out, DrawInstruction{X: contentX + sp.Start*scale.X, Y: py, Text: text, Role: RoleHighlight})
		}
	}

	return append(out, f.statusInstructions(scale)...)
}

func (f Frame) statusInstructions(scale CellScale) []DrawInstruction {
	py := (f.Height - 1) * scale.Y
	status := f.Status
	out := []DrawInstruction{{X: 0, Y: py, Text: textutil.ClipToWidth(status.Position, f.Width), Role: RoleStatusPosition}}

	used := textutil.DisplayWidth(status.Position)
	if status.Prompt != "" && statusPromptColumn < f.Width {
		out = append(out, DrawInstruction{X: statusPromptColumn * scale.X, Y: py, Text: status.Prompt, Role: RoleStatusPrompt})
		used = statusPromptColumn + 1
	}

	pattern := status.Pattern
	if status.Filter && status.Prompt == "" {
		if pattern == "" {
			pattern = "[filter]"
		} else {
			pattern += " [filter]"
		}
	}
	if pattern != "" && statusPatternColumn < f.Width {
		pattern = textutil.ClipToWidth(pattern, f.Width-statusPatternColumn)
		out = append(out, DrawInstruction{X: statusPatternColumn * scale.X, Y: py, Text: pattern, Role: RoleStatusPattern})
		used = statusPatternColumn + textutil.DisplayWidth(pattern)
	}

	if used < statusPatternColumn {
		used = statusPatternColumn
	}
	trailer := status.Info
	if status.Hint != "" {
		if trailer != "" {
			trailer += "  "
		}
		trailer += status.Hint
	}
	if trailer == "" {
		return out
	}
	width := textutil.DisplayWidth(trailer)
	if used+1+width > f.Width {
		trailer = status.Info
		width = textutil.DisplayWidth(trailer)
	}
	if trailer != "" && used+1+width <= f.Width {
		out = append(out, DrawInstruction{X: (f.Width - width) * scale.X, Y: py, Text: trailer, Role: RoleStatusInfo})
	}
	return out
}

// sliceColumns returns the part of text covering display columns [start, end).
func sliceColumns(text string, start, end int) string {
	if end <= start {
		return ""
	}
	return textutil.ClipToWidth(textutil.DropColumns(text, start), end-start)
}
