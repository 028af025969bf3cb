//go:build !windows

package app

import (
	"os"
	"syscall"

	"github.com/kk-code-lab/fv/internal/logging"
	statepkg "github.com/kk-code-lab/fv/internal/state"
)

// resumeSignals are delivered when the shell continues a stopped viewer.
func resumeSignals() []os.Signal {
	return []os.Signal{syscall.SIGCONT}
}

// suspend hands the terminal back to the shell and stops the process. Only
// this pid is signalled so a wrapper's process group keeps running.
func (app *Application) suspend() {
	if err := app.screen.Suspend(); err != nil {
		app.logger.Warn("suspend failed", logging.FieldError, err)
		return
	}
	app.suspended = true
	app.logger.Debug("suspended", logging.FieldTopLine, app.state.TopLine)
	if err := syscall.Kill(syscall.Getpid(), syscall.SIGTSTP); err != nil {
		app.logger.Warn("stop failed", logging.FieldError, err)
	}
}

// resume takes the terminal back after a stop. The window may have been
// resized meanwhile, so the state is clamped again.
func (app *Application) resume() bool {
	if !app.suspended {
		return false
	}
	if err := app.screen.Resume(); err != nil {
		app.logger.Warn("resume failed", logging.FieldError, err)
		return false
	}
	app.suspended = false
	app.screen.EnableMouse()
	app.screen.Sync()
	if _, err := app.reducer.Reduce(app.state, statepkg.ResizeAction{}, app.viewport()); err != nil {
		app.logger.Error("reduce failed", logging.FieldError, err)
	}
	app.logger.Debug("resumed")
	return true
}
