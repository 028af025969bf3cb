package render

import (
	"strconv"
	"strings"

	"github.com/kk-code-lab/fv/internal/document"
	statepkg "github.com/kk-code-lab/fv/internal/state"
	textutil "github.com/kk-code-lab/fv/internal/textutil"
)

// Span is a half-open range of display columns relative to the start of the
// content area.
type Span struct {
	Start int
	End   int
}

// Row is one visible document line.
type Row struct {
	Number  int  // 1-based line number
	Matched bool // the line contains the active pattern
	Text    string
	// Highlights are the pattern occurrences inside Text, in ascending order.
	Highlights []Span
}

// StatusLine is the content of the last screen row.
type StatusLine struct {
	Position string // "<top+1>/<size>"
	Prompt   string // "/" while capturing, ":" while going to a line
	Pattern  string
	Filter   bool
	Info     string // document name and language
	Hint     string
}

// Frame describes everything drawn for one state, in character cells.
type Frame struct {
	Width        int
	Height       int
	MarginWidth  int
	ContentWidth int
	Rows         []Row
	Status       StatusLine
	Help         bool
}

// ProjectOptions tunes projection.
type ProjectOptions struct {
	LineNumberMargin int
}

// DefaultProjectOptions matches the reducer defaults.
func DefaultProjectOptions() ProjectOptions {
	return ProjectOptions{LineNumberMargin: statepkg.DefaultLineNumberMargin}
}

// Project computes the frame for state over doc inside vp. It does not touch
// any drawing surface and does not modify state.
func Project(state *statepkg.ViewerState, doc *document.Document, vp statepkg.Viewport, opts ProjectOptions) Frame {
	frame := Frame{Width: vp.Width, Height: vp.Height}
	if state == nil || vp.Width <= 0 || vp.Height <= 0 {
		return frame
	}
	if opts.LineNumberMargin <= 0 {
		opts.LineNumberMargin = statepkg.DefaultLineNumberMargin
	}

	if state.ShowLineNumbers {
		frame.MarginWidth = opts.LineNumberMargin
		if frame.MarginWidth > vp.Width {
			frame.MarginWidth = vp.Width
		}
	}
	frame.ContentWidth = vp.Width - frame.MarginWidth
	frame.Help = state.HelpVisible

	pattern := state.ActivePattern()
	filtering := state.Filtering && pattern != ""
	rows := vp.ContentRows()
	size := doc.Size()

	for line := state.TopLine; line < size && len(frame.Rows) < rows; line++ {
		text, err := doc.Line(line)
		if err != nil {
			break
		}
		matched := pattern != "" && strings.Contains(text, pattern)
		if filtering && !matched {
			continue
		}
		row := Row{
			Number:  line + 1,
			Matched: matched,
			Text:    textutil.ClipToWidth(textutil.DropColumns(text, state.LeftEdge), frame.ContentWidth),
		}
		if matched {
			row.Highlights = shiftAndClipSpans(literalMatchSpans(text, pattern), state.LeftEdge, frame.ContentWidth)
		}
		frame.Rows = append(frame.Rows, row)
	}

	frame.Status = buildStatusLine(state, doc)
	return frame
}

func buildStatusLine(state *statepkg.ViewerState, doc *document.Document) StatusLine {
	status := StatusLine{
		Position: strconv.Itoa(state.TopLine+1) + "/" + strconv.Itoa(doc.Size()),
		Filter:   state.Filtering,
		Info:     documentInfo(doc),
		Hint:     buildStatusHint(state),
	}
	switch mode := state.Mode.(type) {
	case statepkg.Capturing:
		status.Prompt = "/"
		status.Pattern = mode.Pattern
	case statepkg.GoingToLine:
		status.Prompt = ":"
		status.Pattern = mode.Input
	default:
		status.Pattern = state.Pattern
	}
	return status
}

func documentInfo(doc *document.Document) string {
	if doc == nil {
		return ""
	}
	parts := make([]string, 0, 2)
	if name := doc.Name(); name != "" {
		parts = append(parts, textutil.SanitizeTerminalText(name))
	}
	if lang := doc.Language(); lang != "" {
		parts = append(parts, lang)
	}
	return strings.Join(parts, " · ")
}

// literalMatchSpans returns every non-overlapping occurrence of needle in
// line as display-column spans. Each search resumes after the previous match.
func literalMatchSpans(line, needle string) []Span {
	if needle == "" || line == "" {
		return nil
	}
	var spans []Span
	searchFrom := 0
	for searchFrom <= len(line)-len(needle) {
		idx := strings.Index(line[searchFrom:], needle)
		if idx == -1 {
			break
		}
		start := searchFrom + idx
		end := start + len(needle)
		startCol := textutil.ColumnAt(line, start)
		endCol := startCol + textutil.DisplayWidth(line[start:end])
		spans = append(spans, Span{Start: startCol, End: endCol})
		searchFrom = end
	}
	return spans
}

func shiftAndClipSpans(spans []Span, drop int, widthLimit int) []Span {
	if len(spans) == 0 {
		return nil
	}
	adjusted := make([]Span, 0, len(spans))
	for _, sp := range spans {
		if adj, ok := adjustSpan(sp, drop, widthLimit); ok {
			adjusted = append(adjusted, adj)
		}
	}
	if len(adjusted) == 0 {
		return nil
	}
	return adjusted
}

// adjustSpan moves span left by drop columns and clips it to [0, widthLimit).
func adjustSpan(span Span, drop int, widthLimit int) (Span, bool) {
	start := span.Start - drop
	end := span.End - drop
	if end <= 0 || start >= widthLimit {
		return Span{}, false
	}
	if start < 0 {
		start = 0
	}
	if end > widthLimit {
		end = widthLimit
	}
	if end <= start {
		return Span{}, false
	}
	return Span{Start: start, End: end}, true
}
