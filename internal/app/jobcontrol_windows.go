//go:build windows

package app

import "os"

// Windows consoles have no job control.
func resumeSignals() []os.Signal {
	return nil
}

func (app *Application) suspend() {
	app.logger.Debug("suspend not supported")
}

func (app *Application) resume() bool {
	return false
}
