package state

// ===== MODES =====

// Mode is the input mode of a viewer. Exactly one of Browsing, Capturing or
// GoingToLine is active at a time, so capture-only fields cannot exist while
// browsing.
type Mode interface {
	modeName() string
}

// Browsing is the default mode: keys navigate the document.
type Browsing struct{}

// Capturing collects a new search pattern keystroke by keystroke.
type Capturing struct {
	Pattern string
	// MatchingLine is where Return would jump, or -1 when nothing matches.
	MatchingLine int
}

// GoingToLine collects a 1-based line number to jump to.
type GoingToLine struct {
	Input string
}

func (Browsing) modeName() string    { return "browsing" }
func (Capturing) modeName() string   { return "capturing" }
func (GoingToLine) modeName() string { return "goto" }

// ModeName returns a short label for logging.
func ModeName(m Mode) string {
	if m == nil {
		return Browsing{}.modeName()
	}
	return m.modeName()
}

// ===== STATE DEFINITIONS =====

// Viewport is the size of the drawing surface in character cells. It is passed
// into every transition instead of being queried from the terminal.
type Viewport struct {
	Width  int
	Height int
}

// ContentRows is the number of rows available for document lines; the last
// row is the status line.
func (v Viewport) ContentRows() int {
	if v.Height < 1 {
		return 0
	}
	return v.Height - 1
}

// ViewerState is everything the viewer remembers between keystrokes.
type ViewerState struct {
	TopLine  int // first visible document line
	LeftEdge int // horizontal scroll in display columns

	// Pattern is the committed search pattern. While capturing, the pattern
	// being typed lives in the Capturing mode instead.
	Pattern string

	ShowLineNumbers bool
	Filtering       bool

	Mode Mode

	HelpVisible bool

	// SearchWrapped is set by the last transition when a match was only found
	// after wrapping around the document.
	SearchWrapped bool

	Quit bool
}

// NewViewerState returns the state a session starts in.
func NewViewerState() *ViewerState {
	return &ViewerState{
		ShowLineNumbers: true,
		Mode:            Browsing{},
	}
}

// ActivePattern is the pattern that drives highlighting, filtering and match
// navigation: the one being typed while capturing, the committed one otherwise.
func (s *ViewerState) ActivePattern() string {
	if c, ok := s.Mode.(Capturing); ok {
		return c.Pattern
	}
	return s.Pattern
}

// Capture returns the capture mode when it is active.
func (s *ViewerState) Capture() (Capturing, bool) {
	c, ok := s.Mode.(Capturing)
	return c, ok
}

// IsCapturing reports whether a search pattern is being typed.
func (s *ViewerState) IsCapturing() bool {
	_, ok := s.Mode.(Capturing)
	return ok
}

// GoToLine returns the go-to-line mode when it is active.
func (s *ViewerState) GoToLine() (GoingToLine, bool) {
	g, ok := s.Mode.(GoingToLine)
	return g, ok
}

// IsBrowsing reports whether no prompt is active.
func (s *ViewerState) IsBrowsing() bool {
	switch s.Mode.(type) {
	case nil, Browsing:
		return true
	default:
		return false
	}
}

// MatchingLine is the pending capture target, or -1 when not capturing.
func (s *ViewerState) MatchingLine() int {
	if c, ok := s.Mode.(Capturing); ok {
		return c.MatchingLine
	}
	return -1
}

// FilterActive reports whether navigation and rendering skip non-matching
// lines. Filtering with an empty pattern shows every line.
func (s *ViewerState) FilterActive() bool {
	return s.Filtering && s.ActivePattern() != ""
}
