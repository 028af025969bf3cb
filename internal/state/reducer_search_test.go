package state

import (
	"testing"

	"github.com/kk-code-lab/fv/internal/document"
)

// ===== CAPTURE TESTS =====

func typePattern(t *testing.T, r *StateReducer, s *ViewerState, pattern string, vp Viewport) {
	t.Helper()
	for _, ch := range pattern {
		mustReduce(t, r, s, CaptureCharAction{Char: ch}, vp)
	}
}

func TestStartCaptureClearsPattern(t *testing.T) {
	r := NewStateReducer(sampleDocument(), DefaultReducerOptions())
	s := NewViewerState()
	s.Pattern = "beta"
	vp := Viewport{Width: 80, Height: 3}

	mustReduce(t, r, s, StartCaptureAction{}, vp)

	if !s.IsCapturing() {
		t.Fatalf("expected capturing mode, got %s", ModeName(s.Mode))
	}
	if s.Pattern != "" || s.ActivePattern() != "" {
		t.Fatalf("expected pattern cleared, got %q / %q", s.Pattern, s.ActivePattern())
	}
	if s.MatchingLine() != -1 {
		t.Fatalf("expected MatchingLine=-1, got %d", s.MatchingLine())
	}
}

func TestCaptureTracksMatchingLine(t *testing.T) {
	r := NewStateReducer(sampleDocument(), DefaultReducerOptions())
	s := NewViewerState()
	vp := Viewport{Width: 80, Height: 3}

	mustReduce(t, r, s, StartCaptureAction{}, vp)
	typePattern(t, r, s, "alpha", vp)

	c, ok := s.Capture()
	if !ok {
		t.Fatal("expected capture mode")
	}
	if c.Pattern != "alpha" {
		t.Fatalf("expected pattern alpha, got %q", c.Pattern)
	}
	// First match strictly after line 0.
	if c.MatchingLine != 2 {
		t.Fatalf("expected MatchingLine=2, got %d", c.MatchingLine)
	}
	if s.TopLine != 0 {
		t.Fatalf("typing must not move the view, got TopLine=%d", s.TopLine)
	}
}

func TestCaptureCommitJumpsToMatch(t *testing.T) {
	r := NewStateReducer(sampleDocument(), DefaultReducerOptions())
	s := NewViewerState()
	vp := Viewport{Width: 80, Height: 3}

	mustReduce(t, r, s, StartCaptureAction{}, vp)
	typePattern(t, r, s, "alpha", vp)
	mustReduce(t, r, s, CaptureCommitAction{}, vp)

	if s.TopLine != 2 {
		t.Fatalf("expected TopLine=2, got %d", s.TopLine)
	}
	if !s.IsBrowsing() {
		t.Fatalf("expected browsing after commit, got %s", ModeName(s.Mode))
	}
	if s.Pattern != "alpha" {
		t.Fatalf("expected committed pattern alpha, got %q", s.Pattern)
	}
}

func TestCaptureCancelKeepsPosition(t *testing.T) {
	r := NewStateReducer(sampleDocument(), DefaultReducerOptions())
	s := NewViewerState()
	vp := Viewport{Width: 80, Height: 3}

	mustReduce(t, r, s, StartCaptureAction{}, vp)
	typePattern(t, r, s, "alpha", vp)
	mustReduce(t, r, s, CaptureCancelAction{}, vp)

	if s.TopLine != 0 {
		t.Fatalf("expected TopLine=0, got %d", s.TopLine)
	}
	if s.Pattern != "" || !s.IsBrowsing() || s.MatchingLine() != -1 {
		t.Fatalf("expected cleared browsing state, got %+v", s)
	}
}

func TestCaptureCommitWithoutMatchDoesNotJump(t *testing.T) {
	r := NewStateReducer(sampleDocument(), DefaultReducerOptions())
	s := NewViewerState()
	s.TopLine = 3
	vp := Viewport{Width: 80, Height: 3}

	mustReduce(t, r, s, StartCaptureAction{}, vp)
	typePattern(t, r, s, "delta", vp)
	mustReduce(t, r, s, CaptureCommitAction{}, vp)

	if s.TopLine != 3 {
		t.Fatalf("expected TopLine to stay 3, got %d", s.TopLine)
	}
	if !s.IsBrowsing() {
		t.Fatal("expected browsing after commit")
	}
}

func TestCaptureBackspace(t *testing.T) {
	r := NewStateReducer(sampleDocument(), DefaultReducerOptions())
	s := NewViewerState()
	s.TopLine = 1
	vp := Viewport{Width: 80, Height: 3}

	mustReduce(t, r, s, StartCaptureAction{}, vp)
	typePattern(t, r, s, "gx", vp)
	if s.MatchingLine() != -1 {
		t.Fatalf("expected no match for gx, got %d", s.MatchingLine())
	}

	mustReduce(t, r, s, CaptureBackspaceAction{}, vp)
	if c, _ := s.Capture(); c.Pattern != "g" || c.MatchingLine != 3 {
		t.Fatalf("expected pattern g matching line 3, got %+v", c)
	}

	mustReduce(t, r, s, CaptureBackspaceAction{}, vp)
	mustReduce(t, r, s, CaptureBackspaceAction{}, vp)
	if c, ok := s.Capture(); !ok || c.Pattern != "" {
		t.Fatalf("backspace on empty pattern should stay capturing with empty pattern, got %+v", s.Mode)
	}
}

func TestCaptureBackspaceRemovesWholeRune(t *testing.T) {
	r := NewStateReducer(document.New([]string{"zażółć"}), DefaultReducerOptions())
	s := NewViewerState()
	vp := Viewport{Width: 80, Height: 3}

	mustReduce(t, r, s, StartCaptureAction{}, vp)
	typePattern(t, r, s, "żó", vp)
	mustReduce(t, r, s, CaptureBackspaceAction{}, vp)

	if c, _ := s.Capture(); c.Pattern != "ż" {
		t.Fatalf("expected pattern ż, got %q", c.Pattern)
	}
}

func TestCaptureActionsIgnoredWhileBrowsing(t *testing.T) {
	r := NewStateReducer(sampleDocument(), DefaultReducerOptions())
	s := NewViewerState()
	s.Pattern = "beta"
	s.TopLine = 2
	vp := Viewport{Width: 80, Height: 3}

	for _, action := range []Action{CaptureCharAction{Char: 'x'}, CaptureBackspaceAction{}, CaptureCommitAction{}, CaptureCancelAction{}} {
		mustReduce(t, r, s, action, vp)
	}
	if s.Pattern != "beta" || s.TopLine != 2 || !s.IsBrowsing() {
		t.Fatalf("capture actions must not affect browsing state, got %+v", s)
	}
}

func TestNextAndPreviousMatch(t *testing.T) {
	r := NewStateReducer(sampleDocument(), DefaultReducerOptions())
	s := NewViewerState()
	s.Pattern = "alpha"
	vp := Viewport{Width: 80, Height: 3}

	mustReduce(t, r, s, NextMatchAction{}, vp)
	if s.TopLine != 2 || s.SearchWrapped {
		t.Fatalf("expected TopLine=2 without wrap, got %d wrapped=%v", s.TopLine, s.SearchWrapped)
	}
	mustReduce(t, r, s, NextMatchAction{}, vp)
	mustReduce(t, r, s, NextMatchAction{}, vp)
	if s.TopLine != 0 || !s.SearchWrapped {
		t.Fatalf("expected wrap to 0, got %d wrapped=%v", s.TopLine, s.SearchWrapped)
	}
	mustReduce(t, r, s, PreviousMatchAction{}, vp)
	if s.TopLine != 4 || !s.SearchWrapped {
		t.Fatalf("expected wrap back to 4, got %d wrapped=%v", s.TopLine, s.SearchWrapped)
	}
	mustReduce(t, r, s, LineUpAction{}, vp)
	if s.SearchWrapped {
		t.Fatal("SearchWrapped must reset on the next transition")
	}
}

func TestNextMatchWithEmptyPatternIsNoop(t *testing.T) {
	r := NewStateReducer(sampleDocument(), DefaultReducerOptions())
	s := NewViewerState()
	s.TopLine = 1
	vp := Viewport{Width: 80, Height: 3}

	mustReduce(t, r, s, NextMatchAction{}, vp)
	mustReduce(t, r, s, PreviousMatchAction{}, vp)
	if s.TopLine != 1 {
		t.Fatalf("expected TopLine=1, got %d", s.TopLine)
	}
}

// ===== FILTER TESTS =====

func TestFilteredArrowsJumpBetweenMatches(t *testing.T) {
	r := NewStateReducer(sampleDocument(), DefaultReducerOptions())
	s := NewViewerState()
	s.Pattern = "alpha"
	s.Filtering = true
	vp := Viewport{Width: 80, Height: 3}

	mustReduce(t, r, s, LineDownAction{}, vp)
	if s.TopLine != 2 {
		t.Fatalf("expected TopLine=2, got %d", s.TopLine)
	}
	mustReduce(t, r, s, LineUpAction{}, vp)
	if s.TopLine != 0 {
		t.Fatalf("expected TopLine=0, got %d", s.TopLine)
	}
}

func TestFilteringWithoutPatternMovesByLine(t *testing.T) {
	r := NewStateReducer(sampleDocument(), DefaultReducerOptions())
	s := NewViewerState()
	s.Filtering = true
	vp := Viewport{Width: 80, Height: 3}

	mustReduce(t, r, s, LineDownAction{}, vp)
	if s.TopLine != 1 {
		t.Fatalf("expected TopLine=1, got %d", s.TopLine)
	}
	mustReduce(t, r, s, PageDownAction{}, vp)
	if s.TopLine != 3 {
		t.Fatalf("expected raw paging to TopLine=3, got %d", s.TopLine)
	}
}

func TestFilteredPageDownFullPage(t *testing.T) {
	r := NewStateReducer(sampleDocument(), DefaultReducerOptions())
	s := NewViewerState()
	s.Pattern = "alpha"
	s.Filtering = true

	mustReduce(t, r, s, PageDownAction{}, Viewport{Width: 80, Height: 3})
	if s.TopLine != 4 {
		t.Fatalf("expected TopLine=4, got %d", s.TopLine)
	}
}

func TestFilteredPageDownInsufficientMatchesStays(t *testing.T) {
	r := NewStateReducer(sampleDocument(), DefaultReducerOptions())
	s := NewViewerState()
	s.Pattern = "alpha"
	s.Filtering = true
	s.TopLine = 2

	mustReduce(t, r, s, PageDownAction{}, Viewport{Width: 80, Height: 3})
	if s.TopLine != 2 {
		t.Fatalf("expected TopLine to stay 2, got %d", s.TopLine)
	}
}

func TestFilteredPageDownNeverLandsShortOfAPage(t *testing.T) {
	doc := numberedDocument(60)
	pattern := "match"
	for _, height := range []int{2, 3, 5, 8} {
		vp := Viewport{Width: 80, Height: height}
		r := NewStateReducer(doc, DefaultReducerOptions())
		for top := 0; top < doc.Size(); top++ {
			s := NewViewerState()
			s.Pattern = pattern
			s.Filtering = true
			s.TopLine = top

			mustReduce(t, r, s, PageDownAction{}, vp)
			if s.TopLine == top {
				continue
			}
			hits := 0
			for line := top + 1; line <= s.TopLine; line++ {
				if doc.Contains(line, pattern) {
					hits++
				}
			}
			if hits < vp.ContentRows() {
				t.Fatalf("height %d from %d: moved to %d over only %d matches", height, top, s.TopLine, hits)
			}
		}
	}
}

func TestFilteredPageUp(t *testing.T) {
	r := NewStateReducer(sampleDocument(), DefaultReducerOptions())
	s := NewViewerState()
	s.Pattern = "alpha"
	s.Filtering = true
	s.TopLine = 4
	vp := Viewport{Width: 80, Height: 2}

	mustReduce(t, r, s, PageUpAction{}, vp)
	if s.TopLine != 2 {
		t.Fatalf("expected TopLine=2, got %d", s.TopLine)
	}
}

func TestFilteredPageUpFallsBackToTop(t *testing.T) {
	r := NewStateReducer(numberedDocument(30), DefaultReducerOptions())
	s := NewViewerState()
	s.Pattern = "match"
	s.Filtering = true
	s.TopLine = 9

	mustReduce(t, r, s, PageUpAction{}, Viewport{Width: 80, Height: 6})
	if s.TopLine != 0 {
		t.Fatalf("expected fallback to 0, got %d", s.TopLine)
	}
}

func TestCapturePatternDrivesFiltering(t *testing.T) {
	r := NewStateReducer(sampleDocument(), DefaultReducerOptions())
	s := NewViewerState()
	s.Filtering = true
	vp := Viewport{Width: 80, Height: 3}

	mustReduce(t, r, s, StartCaptureAction{}, vp)
	typePattern(t, r, s, "gam", vp)
	if !s.FilterActive() {
		t.Fatal("expected in-progress pattern to activate filtering")
	}
	mustReduce(t, r, s, LineDownAction{}, vp)
	if s.TopLine != 3 {
		t.Fatalf("expected TopLine=3, got %d", s.TopLine)
	}
}

func TestSingleLineDocumentStaysAtZero(t *testing.T) {
	r := NewStateReducer(document.New([]string{"only"}), DefaultReducerOptions())
	s := NewViewerState()
	s.Pattern = "only"
	vp := Viewport{Width: 80, Height: 3}

	for _, action := range []Action{PreviousMatchAction{}, NextMatchAction{}, LineDownAction{}, PageDownAction{}, EndOfDocumentAction{}} {
		mustReduce(t, r, s, action, vp)
		if s.TopLine != 0 {
			t.Fatalf("%T: expected TopLine=0, got %d", action, s.TopLine)
		}
	}
}
