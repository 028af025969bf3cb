package state

import (
	"strings"
	"testing"

	"github.com/kk-code-lab/fv/internal/document"
)

// ===== NAVIGATION TESTS =====

func TestLineDownAndUp(t *testing.T) {
	r := NewStateReducer(sampleDocument(), DefaultReducerOptions())
	s := NewViewerState()
	vp := Viewport{Width: 80, Height: 3}

	mustReduce(t, r, s, LineDownAction{}, vp)
	if s.TopLine != 1 {
		t.Fatalf("expected TopLine=1, got %d", s.TopLine)
	}
	mustReduce(t, r, s, LineUpAction{}, vp)
	mustReduce(t, r, s, LineUpAction{}, vp)
	if s.TopLine != 0 {
		t.Fatalf("expected TopLine clamped at 0, got %d", s.TopLine)
	}
}

func TestLineDownStopsAtLastLine(t *testing.T) {
	r := NewStateReducer(sampleDocument(), DefaultReducerOptions())
	s := NewViewerState()
	s.TopLine = 4

	mustReduce(t, r, s, LineDownAction{}, Viewport{Width: 80, Height: 3})
	if s.TopLine != 4 {
		t.Fatalf("Should stay at 4, got %d", s.TopLine)
	}
}

func TestPageDownAndUp(t *testing.T) {
	r := NewStateReducer(numberedDocument(100), DefaultReducerOptions())
	s := NewViewerState()
	vp := Viewport{Width: 80, Height: 11}

	mustReduce(t, r, s, PageDownAction{}, vp)
	if s.TopLine != 10 {
		t.Fatalf("expected TopLine=10, got %d", s.TopLine)
	}
	mustReduce(t, r, s, PageUpAction{}, vp)
	mustReduce(t, r, s, PageUpAction{}, vp)
	if s.TopLine != 0 {
		t.Fatalf("expected TopLine=0, got %d", s.TopLine)
	}
}

func TestBigPageDownMovesSeveralPages(t *testing.T) {
	r := NewStateReducer(numberedDocument(1000), ReducerOptions{LineNumberMargin: 8, BigPageFactor: 10})
	s := NewViewerState()
	vp := Viewport{Width: 80, Height: 11}

	mustReduce(t, r, s, BigPageDownAction{}, vp)
	if s.TopLine != 100 {
		t.Fatalf("expected TopLine=100, got %d", s.TopLine)
	}
	mustReduce(t, r, s, BigPageUpAction{}, vp)
	if s.TopLine != 0 {
		t.Fatalf("expected TopLine=0, got %d", s.TopLine)
	}
}

func TestBigPageDownStopsAtEnd(t *testing.T) {
	r := NewStateReducer(numberedDocument(25), DefaultReducerOptions())
	s := NewViewerState()

	mustReduce(t, r, s, BigPageDownAction{}, Viewport{Width: 80, Height: 11})
	if s.TopLine != 24 {
		t.Fatalf("expected TopLine=24, got %d", s.TopLine)
	}
}

func TestStartAndEndOfDocument(t *testing.T) {
	r := NewStateReducer(numberedDocument(100), DefaultReducerOptions())
	s := NewViewerState()
	vp := Viewport{Width: 80, Height: 11}

	mustReduce(t, r, s, EndOfDocumentAction{}, vp)
	if s.TopLine != 90 {
		t.Fatalf("expected TopLine=90, got %d", s.TopLine)
	}
	mustReduce(t, r, s, StartOfDocumentAction{}, vp)
	if s.TopLine != 0 {
		t.Fatalf("expected TopLine=0, got %d", s.TopLine)
	}
}

func TestEndOfDocumentShortDocumentClampsToZero(t *testing.T) {
	r := NewStateReducer(sampleDocument(), DefaultReducerOptions())
	s := NewViewerState()

	mustReduce(t, r, s, EndOfDocumentAction{}, Viewport{Width: 80, Height: 24})
	if s.TopLine != 0 {
		t.Fatalf("expected TopLine=0, got %d", s.TopLine)
	}
}

func TestColumnNavigation(t *testing.T) {
	r := NewStateReducer(sampleDocument(), DefaultReducerOptions())
	s := NewViewerState()
	vp := Viewport{Width: 3, Height: 5}

	mustReduce(t, r, s, ColumnLeftAction{}, vp)
	if s.LeftEdge != 0 {
		t.Fatalf("expected LeftEdge clamped at 0, got %d", s.LeftEdge)
	}
	for i := 0; i < 5; i++ {
		mustReduce(t, r, s, ColumnRightAction{}, vp)
	}
	if s.LeftEdge != 2 {
		t.Fatalf("expected LeftEdge clamped at width-1=2, got %d", s.LeftEdge)
	}
	mustReduce(t, r, s, LeftmostColumnAction{}, vp)
	if s.LeftEdge != 0 {
		t.Fatalf("expected LeftEdge=0, got %d", s.LeftEdge)
	}
}

func TestRightmostColumn(t *testing.T) {
	doc := document.New([]string{
		"short",
		strings.Repeat("x", 30),
		"tiny",
	})
	r := NewStateReducer(doc, ReducerOptions{LineNumberMargin: 8, BigPageFactor: 10})
	s := NewViewerState()
	vp := Viewport{Width: 20, Height: 5}

	mustReduce(t, r, s, RightmostColumnAction{}, vp)
	// 30 - 20 + 8
	if s.LeftEdge != 18 {
		t.Fatalf("expected LeftEdge=18, got %d", s.LeftEdge)
	}

	s.ShowLineNumbers = false
	mustReduce(t, r, s, RightmostColumnAction{}, vp)
	if s.LeftEdge != 10 {
		t.Fatalf("expected LeftEdge=10 without margin, got %d", s.LeftEdge)
	}
}

func TestRightmostColumnFitsReturnsZero(t *testing.T) {
	r := NewStateReducer(sampleDocument(), DefaultReducerOptions())
	s := NewViewerState()
	s.LeftEdge = 3

	mustReduce(t, r, s, RightmostColumnAction{}, Viewport{Width: 80, Height: 5})
	if s.LeftEdge != 0 {
		t.Fatalf("expected LeftEdge=0 when every line fits, got %d", s.LeftEdge)
	}
}

func TestRightmostColumnIsClampedToWidth(t *testing.T) {
	doc := document.New([]string{strings.Repeat("y", 200)})
	r := NewStateReducer(doc, DefaultReducerOptions())
	s := NewViewerState()

	mustReduce(t, r, s, RightmostColumnAction{}, Viewport{Width: 20, Height: 5})
	if s.LeftEdge != 19 {
		t.Fatalf("expected LeftEdge clamped to 19, got %d", s.LeftEdge)
	}
}

func TestRightmostColumnFilteringSkipsNonMatches(t *testing.T) {
	doc := document.New([]string{
		"match",
		strings.Repeat("z", 40),
		"match " + strings.Repeat("m", 20),
	})
	r := NewStateReducer(doc, DefaultReducerOptions())
	s := NewViewerState()
	s.ShowLineNumbers = false
	s.Filtering = true
	s.Pattern = "match"

	mustReduce(t, r, s, RightmostColumnAction{}, Viewport{Width: 20, Height: 5})
	// longest matching line is 26 columns
	if s.LeftEdge != 6 {
		t.Fatalf("expected LeftEdge=6, got %d", s.LeftEdge)
	}
}

func TestRightmostColumnOnlyScansOneScreen(t *testing.T) {
	lines := []string{"a", "b", strings.Repeat("w", 50)}
	r := NewStateReducer(document.New(lines), DefaultReducerOptions())
	s := NewViewerState()
	s.ShowLineNumbers = false

	mustReduce(t, r, s, RightmostColumnAction{}, Viewport{Width: 10, Height: 2})
	if s.LeftEdge != 0 {
		t.Fatalf("expected long line below the screen to be ignored, got %d", s.LeftEdge)
	}
}

func TestGoToLine(t *testing.T) {
	r := NewStateReducer(numberedDocument(100), DefaultReducerOptions())
	s := NewViewerState()
	vp := Viewport{Width: 80, Height: 11}

	mustReduce(t, r, s, StartGoToLineAction{}, vp)
	if _, ok := s.GoToLine(); !ok {
		t.Fatalf("expected goto mode, got %s", ModeName(s.Mode))
	}
	for _, ch := range "4x2" {
		mustReduce(t, r, s, GoToLineCharAction{Char: ch}, vp)
	}
	if g, _ := s.GoToLine(); g.Input != "42" {
		t.Fatalf("expected input 42, got %q", g.Input)
	}
	mustReduce(t, r, s, GoToLineCommitAction{}, vp)
	if s.TopLine != 41 || !s.IsBrowsing() {
		t.Fatalf("expected TopLine=41 in browsing mode, got %d (%s)", s.TopLine, ModeName(s.Mode))
	}
}

func TestGoToLineBeyondEndClamps(t *testing.T) {
	r := NewStateReducer(sampleDocument(), DefaultReducerOptions())
	s := NewViewerState()
	vp := Viewport{Width: 80, Height: 3}

	mustReduce(t, r, s, StartGoToLineAction{}, vp)
	for _, ch := range "999" {
		mustReduce(t, r, s, GoToLineCharAction{Char: ch}, vp)
	}
	mustReduce(t, r, s, GoToLineCommitAction{}, vp)
	if s.TopLine != 4 {
		t.Fatalf("expected TopLine=4, got %d", s.TopLine)
	}
}

func TestGoToLineBackspaceAndCancel(t *testing.T) {
	r := NewStateReducer(numberedDocument(50), DefaultReducerOptions())
	s := NewViewerState()
	s.TopLine = 7
	vp := Viewport{Width: 80, Height: 11}

	mustReduce(t, r, s, StartGoToLineAction{}, vp)
	mustReduce(t, r, s, GoToLineCharAction{Char: '1'}, vp)
	mustReduce(t, r, s, GoToLineCharAction{Char: '2'}, vp)
	mustReduce(t, r, s, GoToLineBackspaceAction{}, vp)
	if g, _ := s.GoToLine(); g.Input != "1" {
		t.Fatalf("expected input 1, got %q", g.Input)
	}
	mustReduce(t, r, s, GoToLineCancelAction{}, vp)
	if !s.IsBrowsing() || s.TopLine != 7 {
		t.Fatalf("cancel should keep TopLine=7 and browse, got %d (%s)", s.TopLine, ModeName(s.Mode))
	}
}

func TestGoToLineEmptyInputDoesNotMove(t *testing.T) {
	r := NewStateReducer(numberedDocument(50), DefaultReducerOptions())
	s := NewViewerState()
	s.TopLine = 7
	vp := Viewport{Width: 80, Height: 11}

	mustReduce(t, r, s, StartGoToLineAction{}, vp)
	mustReduce(t, r, s, GoToLineCommitAction{}, vp)
	if s.TopLine != 7 {
		t.Fatalf("expected TopLine=7, got %d", s.TopLine)
	}
}

func TestEmptyDocumentNavigation(t *testing.T) {
	r := NewStateReducer(document.New(nil), DefaultReducerOptions())
	s := NewViewerState()
	vp := Viewport{Width: 80, Height: 24}

	for _, action := range []Action{LineDownAction{}, PageDownAction{}, EndOfDocumentAction{}, NextMatchAction{}} {
		mustReduce(t, r, s, action, vp)
		if s.TopLine != 0 {
			t.Fatalf("%T: expected TopLine=0 on empty document, got %d", action, s.TopLine)
		}
	}
}
