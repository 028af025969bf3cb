package app

import (
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/fv/internal/document"
	"github.com/kk-code-lab/fv/internal/logging"
	statepkg "github.com/kk-code-lab/fv/internal/state"
	inputui "github.com/kk-code-lab/fv/internal/ui/input"
	renderui "github.com/kk-code-lab/fv/internal/ui/render"
)

// Options configures an Application.
type Options struct {
	Reducer statepkg.ReducerOptions
	Scale   renderui.CellScale
	Theme   renderui.ColorTheme
	// Logger receives diagnostics while the screen owns the terminal. It must
	// not write to the terminal; nil discards.
	Logger *log.Logger
}

// DefaultOptions returns the built-in defaults.
func DefaultOptions() Options {
	return Options{
		Reducer: statepkg.DefaultReducerOptions(),
		Scale:   renderui.DefaultCellScale(),
		Theme:   renderui.GetColorTheme(),
	}
}

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	doc        *document.Document
	state      *statepkg.ViewerState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	projection renderui.ProjectOptions
	logger     *log.Logger
	suspended  bool
	shouldQuit bool
	closed     bool
}

// NewApplication opens the terminal screen and prepares a viewer for doc.
// state may be nil for a fresh session.
func NewApplication(doc *document.Document, state *statepkg.ViewerState, opts Options) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewApplicationWithScreen(screen, doc, state, opts)
}

// NewApplicationWithScreen is NewApplication over an existing, uninitialized
// screen.
func NewApplicationWithScreen(screen tcell.Screen, doc *document.Document, state *statepkg.ViewerState, opts Options) (*Application, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	if state == nil {
		state = statepkg.NewViewerState()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	actionCh := make(chan statepkg.Action, 10)
	renderer := renderui.NewRenderer(screen, opts.Theme)
	renderer.SetScale(opts.Scale)
	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	reducer := statepkg.NewStateReducer(doc, opts.Reducer)

	app := &Application{
		screen:     screen,
		doc:        doc,
		state:      state,
		reducer:    reducer,
		renderer:   renderer,
		input:      inputHandler,
		actionCh:   actionCh,
		projection: renderui.ProjectOptions{LineNumberMargin: reducer.Options().LineNumberMargin},
		logger:     logger,
	}

	// Settle the initial state (for example an initial pattern or a line
	// beyond the end) against the real screen size.
	if _, err := reducer.Reduce(state, statepkg.ResizeAction{}, app.viewport()); err != nil {
		screen.Fini()
		return nil, err
	}
	return app, nil
}

// State returns the live viewer state.
func (app *Application) State() *statepkg.ViewerState {
	return app.state
}

// Close restores the terminal. It is safe to call more than once.
func (app *Application) Close() error {
	if app.closed {
		return nil
	}
	app.closed = true
	app.screen.Fini()
	return flushConsoleInput()
}

func (app *Application) viewport() statepkg.Viewport {
	w, h := app.screen.Size()
	return statepkg.Viewport{Width: w, Height: h}
}
