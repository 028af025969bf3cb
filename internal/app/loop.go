package app

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/fv/internal/logging"
	statepkg "github.com/kk-code-lab/fv/internal/state"
	renderui "github.com/kk-code-lab/fv/internal/ui/render"
)

// Run draws the document and processes input until the user quits.
func (app *Application) Run() {
	done := make(chan struct{})
	defer close(done)
	events := app.pumpEvents(done)

	var resumeCh chan os.Signal
	if sigs := resumeSignals(); len(sigs) > 0 {
		resumeCh = make(chan os.Signal, 1)
		signal.Notify(resumeCh, sigs...)
		defer signal.Stop(resumeCh)
	}

	dirty := true
	for !app.shouldQuit {
		if dirty {
			app.render()
			dirty = false
		}

		select {
		case ev := <-events:
			dirty = app.handleEvent(ev) || dirty
		case action := <-app.actionCh:
			dirty = app.handleAction(action) || dirty
		case <-resumeCh:
			dirty = app.resume() || dirty
		}

		// Drain what the event produced before drawing once.
		dirty = app.processActions() || dirty
	}
}

// pumpEvents forwards screen events until the screen is finalized or done
// is closed.
func (app *Application) pumpEvents(done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev.(type) {
	case *tcell.EventKey, *tcell.EventResize, *tcell.EventMouse:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
		return true
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.logger.Debug("quit", logging.FieldTopLine, app.state.TopLine)
		app.shouldQuit = true
		return false
	case statepkg.SuspendAction:
		app.suspend()
		app.resume()
		return true
	case statepkg.ResizeAction:
		app.screen.Sync()
	}

	prevMode := statepkg.ModeName(app.state.Mode)
	vp := app.viewport()
	if _, err := app.reducer.Reduce(app.state, action, vp); err != nil {
		app.logger.Error("reduce failed", logging.FieldAction, fmt.Sprintf("%T", action), logging.FieldError, err)
		return false
	}
	if mode := statepkg.ModeName(app.state.Mode); mode != prevMode {
		app.logger.Debug("mode changed", logging.FieldMode, mode, logging.FieldPattern, app.state.Pattern)
	}
	if app.state.SearchWrapped {
		app.logger.Debug("search wrapped", logging.FieldTopLine, app.state.TopLine)
		_ = app.screen.Beep()
	}
	if app.state.Quit {
		app.shouldQuit = true
	}
	return true
}

// Frame projects the current state onto the current screen size.
func (app *Application) Frame() renderui.Frame {
	return renderui.Project(app.state, app.doc, app.viewport(), app.projection)
}

func (app *Application) render() {
	app.renderer.Render(app.Frame())
}
