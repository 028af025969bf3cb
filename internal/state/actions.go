package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== VERTICAL NAVIGATION =====

type LineUpAction struct{}
type LineDownAction struct{}
type PageUpAction struct{}
type PageDownAction struct{}

// BigPageUpAction and BigPageDownAction move several pages at once
// (Ctrl+PgUp / Ctrl+PgDn).
type BigPageUpAction struct{}
type BigPageDownAction struct{}

type StartOfDocumentAction struct{}
type EndOfDocumentAction struct{}

// ===== HORIZONTAL NAVIGATION =====

type ColumnLeftAction struct{}
type ColumnRightAction struct{}
type LeftmostColumnAction struct{}
type RightmostColumnAction struct{}

// ===== SEARCH ACTIONS =====

type StartCaptureAction struct{}
type CaptureCharAction struct {
	Char rune
}
type CaptureBackspaceAction struct{}
type CaptureCommitAction struct{}
type CaptureCancelAction struct{}

type NextMatchAction struct{}
type PreviousMatchAction struct{}

// ===== GO TO LINE ACTIONS =====

type StartGoToLineAction struct{}
type GoToLineCharAction struct {
	Char rune
}
type GoToLineBackspaceAction struct{}
type GoToLineCommitAction struct{}
type GoToLineCancelAction struct{}

// ===== VIEW ACTIONS =====

type ToggleLineNumbersAction struct{}
type ToggleFilteringAction struct{}
type HelpToggleAction struct{}
type HelpHideAction struct{}

// ResizeAction carries no payload; the new size arrives as the Viewport of
// the transition and the post-event clamps do the rest.
type ResizeAction struct{}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}

// SuspendAction hands the terminal back to the shell (Ctrl+Z). The reducer
// leaves state alone; the application loop performs the suspend.
type SuspendAction struct{}
