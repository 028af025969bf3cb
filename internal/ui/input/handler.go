package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/fv/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.ViewerState // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.ViewerState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into actions. It returns false once a
// quit action has been emitted.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		ih.actionChan <- statepkg.ResizeAction{}
		return true
	case *tcell.EventMouse:
		ih.processMouseEvent(ev)
		return true
	default:
		return true
	}
}

func (ih *InputHandler) quit() bool {
	ih.actionChan <- statepkg.QuitAction{}
	return false
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return ih.quit()
	case tcell.KeyCtrlZ:
		ih.actionChan <- statepkg.SuspendAction{}
		return true
	}

	if ih.state != nil && ih.state.HelpVisible {
		switch ev.Key() {
		case tcell.KeyEscape:
			ih.actionChan <- statepkg.HelpHideAction{}
		case tcell.KeyRune:
			r := ev.Rune()
			if r == '?' || r == 'q' || r == 'Q' {
				ih.actionChan <- statepkg.HelpHideAction{}
			}
		}
		return true
	}

	if ih.processNavigationKey(ev) {
		return true
	}

	switch {
	case ih.state != nil && ih.state.IsCapturing():
		ih.processCaptureKey(ev)
		return true
	case ih.state != nil && isGoingToLine(ih.state):
		ih.processGoToLineKey(ev)
		return true
	default:
		return ih.processBrowsingKey(ev)
	}
}

// processNavigationKey handles the keys that scroll the view in every mode.
func (ih *InputHandler) processNavigationKey(ev *tcell.EventKey) bool {
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0

	var action statepkg.Action
	switch ev.Key() {
	case tcell.KeyUp:
		action = statepkg.LineUpAction{}
	case tcell.KeyDown:
		action = statepkg.LineDownAction{}
	case tcell.KeyLeft:
		action = statepkg.ColumnLeftAction{}
	case tcell.KeyRight:
		action = statepkg.ColumnRightAction{}
	case tcell.KeyHome:
		if ctrl {
			action = statepkg.StartOfDocumentAction{}
		} else {
			action = statepkg.LeftmostColumnAction{}
		}
	case tcell.KeyEnd:
		if ctrl {
			action = statepkg.EndOfDocumentAction{}
		} else {
			action = statepkg.RightmostColumnAction{}
		}
	case tcell.KeyPgUp:
		if ctrl {
			action = statepkg.BigPageUpAction{}
		} else {
			action = statepkg.PageUpAction{}
		}
	case tcell.KeyPgDn:
		if ctrl {
			action = statepkg.BigPageDownAction{}
		} else {
			action = statepkg.PageDownAction{}
		}
	case tcell.KeyCtrlL:
		action = statepkg.ToggleLineNumbersAction{}
	case tcell.KeyCtrlT:
		action = statepkg.ToggleFilteringAction{}
	default:
		return false
	}

	ih.actionChan <- action
	return true
}

func (ih *InputHandler) processCaptureKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.CaptureCancelAction{}
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.CaptureCommitAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.CaptureBackspaceAction{}
	case tcell.KeyRune:
		ih.actionChan <- statepkg.CaptureCharAction{Char: ev.Rune()}
	}
}

func (ih *InputHandler) processGoToLineKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.GoToLineCancelAction{}
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.GoToLineCommitAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.GoToLineBackspaceAction{}
	case tcell.KeyRune:
		ih.actionChan <- statepkg.GoToLineCharAction{Char: ev.Rune()}
	}
}

func (ih *InputHandler) processBrowsingKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		return ih.quit()
	case tcell.KeyCtrlG:
		ih.actionChan <- statepkg.StartGoToLineAction{}
	case tcell.KeyRune:
		switch ev.Rune() {
		case '/':
			ih.actionChan <- statepkg.StartCaptureAction{}
		case 'n':
			ih.actionChan <- statepkg.NextMatchAction{}
		case 'p':
			ih.actionChan <- statepkg.PreviousMatchAction{}
		case '?':
			ih.actionChan <- statepkg.HelpToggleAction{}
		case 'q', 'Q':
			return ih.quit()
		}
	}
	return true
}

// processMouseEvent scrolls with the wheel. Clicks are ignored.
func (ih *InputHandler) processMouseEvent(ev *tcell.EventMouse) {
	if ih.state != nil && ih.state.HelpVisible {
		return
	}
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		ih.actionChan <- statepkg.LineUpAction{}
	case buttons&tcell.WheelDown != 0:
		ih.actionChan <- statepkg.LineDownAction{}
	case buttons&tcell.WheelLeft != 0:
		ih.actionChan <- statepkg.ColumnLeftAction{}
	case buttons&tcell.WheelRight != 0:
		ih.actionChan <- statepkg.ColumnRightAction{}
	}
}

func isGoingToLine(state *statepkg.ViewerState) bool {
	_, ok := state.GoToLine()
	return ok
}
