package state

import (
	"errors"
	"strconv"

	"github.com/kk-code-lab/fv/internal/document"
	textutil "github.com/kk-code-lab/fv/internal/textutil"
)

const (
	DefaultLineNumberMargin = 8
	DefaultBigPageFactor    = 10
)

// ReducerOptions tune transitions that depend on layout constants.
type ReducerOptions struct {
	// LineNumberMargin is the width of the line-number column when shown.
	LineNumberMargin int
	// BigPageFactor is how many pages Ctrl+PgUp/Ctrl+PgDn move.
	BigPageFactor int
}

// DefaultReducerOptions returns the options used when none are configured.
func DefaultReducerOptions() ReducerOptions {
	return ReducerOptions{
		LineNumberMargin: DefaultLineNumberMargin,
		BigPageFactor:    DefaultBigPageFactor,
	}
}

// StateReducer applies actions to a ViewerState over one document.
type StateReducer struct {
	doc  *document.Document
	opts ReducerOptions
}

// NewStateReducer creates a reducer for doc.
func NewStateReducer(doc *document.Document, opts ReducerOptions) *StateReducer {
	if opts.LineNumberMargin < 0 {
		opts.LineNumberMargin = 0
	}
	if opts.BigPageFactor < 1 {
		opts.BigPageFactor = 1
	}
	return &StateReducer{doc: doc, opts: opts}
}

// Document returns the document the reducer navigates.
func (r *StateReducer) Document() *document.Document {
	return r.doc
}

// Options returns the reducer's layout options.
func (r *StateReducer) Options() ReducerOptions {
	return r.opts
}

// Reduce applies an action to state for a surface of size vp.
// The only inputs are the state, the action and vp; TopLine and LeftEdge are
// clamped afterwards whatever the action did.
func (r *StateReducer) Reduce(state *ViewerState, action Action, vp Viewport) (*ViewerState, error) {
	if state == nil {
		return nil, errors.New("nil viewer state")
	}
	if state.Mode == nil {
		state.Mode = Browsing{}
	}
	state.SearchWrapped = false

	switch a := action.(type) {

	// ===== VERTICAL NAVIGATION =====

	case LineUpAction:
		if state.FilterActive() {
			r.previousMatch(state)
		} else {
			state.TopLine--
		}

	case LineDownAction:
		if state.FilterActive() {
			r.nextMatch(state)
		} else {
			state.TopLine++
		}

	case PageUpAction:
		r.pageUp(state, vp)

	case PageDownAction:
		r.pageDown(state, vp)

	case BigPageUpAction:
		for i := 0; i < r.opts.BigPageFactor; i++ {
			before := state.TopLine
			r.pageUp(state, vp)
			r.clamp(state, vp)
			if state.TopLine == before {
				break
			}
		}

	case BigPageDownAction:
		for i := 0; i < r.opts.BigPageFactor; i++ {
			before := state.TopLine
			r.pageDown(state, vp)
			r.clamp(state, vp)
			if state.TopLine == before {
				break
			}
		}

	case StartOfDocumentAction:
		state.TopLine = 0

	case EndOfDocumentAction:
		state.TopLine = r.doc.Size() - vp.ContentRows()

	// ===== HORIZONTAL NAVIGATION =====

	case ColumnLeftAction:
		state.LeftEdge--

	case ColumnRightAction:
		state.LeftEdge++

	case LeftmostColumnAction:
		state.LeftEdge = 0

	case RightmostColumnAction:
		state.LeftEdge = r.rightmostColumn(state, vp)

	// ===== SEARCH =====

	case StartCaptureAction:
		if state.IsBrowsing() {
			state.Pattern = ""
			state.Mode = Capturing{MatchingLine: document.NoMatch}
		}

	case CaptureCharAction:
		if c, ok := state.Capture(); ok {
			c.Pattern += string(a.Char)
			c.MatchingLine = r.doc.FindNextMatchingLine(state.TopLine, c.Pattern)
			state.Mode = c
		}

	case CaptureBackspaceAction:
		if c, ok := state.Capture(); ok && c.Pattern != "" {
			runes := []rune(c.Pattern)
			c.Pattern = string(runes[:len(runes)-1])
			c.MatchingLine = r.doc.FindNextMatchingLine(state.TopLine, c.Pattern)
			state.Mode = c
		}

	case CaptureCommitAction:
		if c, ok := state.Capture(); ok {
			state.Pattern = c.Pattern
			if c.MatchingLine != document.NoMatch {
				state.TopLine = c.MatchingLine
			}
			state.Mode = Browsing{}
		}

	case CaptureCancelAction:
		if state.IsCapturing() {
			state.Pattern = ""
			state.Mode = Browsing{}
		}

	case NextMatchAction:
		r.nextMatch(state)

	case PreviousMatchAction:
		r.previousMatch(state)

	// ===== GO TO LINE =====

	case StartGoToLineAction:
		if state.IsBrowsing() {
			state.Mode = GoingToLine{}
		}

	case GoToLineCharAction:
		if g, ok := state.GoToLine(); ok && a.Char >= '0' && a.Char <= '9' {
			g.Input += string(a.Char)
			state.Mode = g
		}

	case GoToLineBackspaceAction:
		if g, ok := state.GoToLine(); ok && g.Input != "" {
			g.Input = g.Input[:len(g.Input)-1]
			state.Mode = g
		}

	case GoToLineCommitAction:
		if g, ok := state.GoToLine(); ok {
			if n, err := strconv.Atoi(g.Input); err == nil && n > 0 {
				state.TopLine = n - 1
			}
			state.Mode = Browsing{}
		}

	case GoToLineCancelAction:
		if _, ok := state.GoToLine(); ok {
			state.Mode = Browsing{}
		}

	// ===== VIEW =====

	case ToggleLineNumbersAction:
		state.ShowLineNumbers = !state.ShowLineNumbers

	case ToggleFilteringAction:
		state.Filtering = !state.Filtering

	case HelpToggleAction:
		state.HelpVisible = !state.HelpVisible

	case HelpHideAction:
		state.HelpVisible = false

	case ResizeAction:

	case QuitAction:
		state.Quit = true
	}

	r.clamp(state, vp)
	return state, nil
}

func (r *StateReducer) nextMatch(state *ViewerState) {
	line, wrapped := r.doc.LocateNextMatchWrapped(state.TopLine, state.ActivePattern())
	state.TopLine = line
	state.SearchWrapped = wrapped
}

func (r *StateReducer) previousMatch(state *ViewerState) {
	line, wrapped := r.doc.LocatePreviousMatchWrapped(state.TopLine, state.ActivePattern())
	state.TopLine = line
	state.SearchWrapped = wrapped
}

func (r *StateReducer) pageUp(state *ViewerState, vp Viewport) {
	if state.FilterActive() {
		state.TopLine = r.previousFilteredPage(state.TopLine, state.ActivePattern(), vp.ContentRows())
		return
	}
	state.TopLine -= vp.ContentRows()
}

func (r *StateReducer) pageDown(state *ViewerState, vp Viewport) {
	if state.FilterActive() {
		state.TopLine = r.nextFilteredPage(state.TopLine, state.ActivePattern(), vp.ContentRows())
		return
	}
	state.TopLine += vp.ContentRows()
}

// nextFilteredPage walks forward one matching line at a time and returns the
// line reached after rows hits. When fewer matches remain it returns top so a
// filtered page never lands short of a full page.
func (r *StateReducer) nextFilteredPage(top int, pattern string, rows int) int {
	hits := 0
	line := top
	for line != document.NoMatch && line < r.doc.Size() && hits < rows {
		line = r.doc.FindNextMatchingLine(line+1, pattern)
		if line != document.NoMatch {
			hits++
		}
	}
	if hits == rows {
		return line
	}
	return top
}

// previousFilteredPage mirrors nextFilteredPage but falls back to the top of
// the document when a full page of matches is not available above.
func (r *StateReducer) previousFilteredPage(top int, pattern string, rows int) int {
	hits := 0
	line := top
	for line != document.NoMatch && line >= 0 && hits < rows {
		line = r.doc.FindPreviousMatchingLine(line-1, pattern)
		if line != document.NoMatch {
			hits++
		}
	}
	if hits == rows {
		return line
	}
	return 0
}

// rightmostColumn returns the left edge that brings the end of the longest
// line among the next screenful of visible lines to the right border.
func (r *StateReducer) rightmostColumn(state *ViewerState, vp Viewport) int {
	pattern := state.ActivePattern()
	filter := state.FilterActive()

	length := 0
	remaining := vp.Height
	for line := state.TopLine; remaining > 0 && line < r.doc.Size(); line++ {
		if filter && !r.doc.Contains(line, pattern) {
			continue
		}
		text, err := r.doc.Line(line)
		if err != nil {
			break
		}
		length = max(length, textutil.DisplayWidth(text))
		remaining--
	}

	margin := 0
	if state.ShowLineNumbers {
		margin = r.opts.LineNumberMargin
	}
	if length > vp.Width-margin {
		return length - vp.Width + margin
	}
	return 0
}

// clamp enforces 0 <= LeftEdge <= Width-1 and 0 <= TopLine <= max(0, size-1).
func (r *StateReducer) clamp(state *ViewerState, vp Viewport) {
	state.LeftEdge = clampInt(state.LeftEdge, 0, max(0, vp.Width-1))
	state.TopLine = clampInt(state.TopLine, 0, max(0, r.doc.Size()-1))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
