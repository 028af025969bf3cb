package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kk-code-lab/fv/internal/app"
	"github.com/kk-code-lab/fv/internal/config"
	"github.com/kk-code-lab/fv/internal/document"
	"github.com/kk-code-lab/fv/internal/logging"
	statepkg "github.com/kk-code-lab/fv/internal/state"
	renderui "github.com/kk-code-lab/fv/internal/ui/render"
)

// ErrNoInput is returned when no file is named and standard input is a
// terminal.
var ErrNoInput = errors.New("no input: name a file or pipe text into fv")

// Size used by --dump when standard output is not a terminal.
const (
	fallbackDumpWidth  = 80
	fallbackDumpHeight = 24
)

type viewOptions struct {
	pattern       string
	filter        bool
	line          int
	noLineNumbers bool
	dump          bool
	color         string
}

func addViewFlags(cmd *cobra.Command, opts *viewOptions) {
	flags := cmd.Flags()
	flags.StringVarP(&opts.pattern, "pattern", "p", "", "start with this search pattern")
	flags.BoolVarP(&opts.filter, "filter", "f", false, "show only lines matching the pattern")
	flags.IntVarP(&opts.line, "line", "n", 0, "start at this line (1-based)")
	flags.BoolVar(&opts.noLineNumbers, "no-line-numbers", false, "hide the line-number column")
	flags.BoolVar(&opts.dump, "dump", false, "print the first screen to stdout instead of opening the viewer")
	flags.StringVar(&opts.color, "color", "auto", "colorize --dump output: auto, always, never")
	flags.Int("tab-width", config.Default().View.TabWidth, "tab stop distance")
	flags.String("log-file", "", "append diagnostics to this file")
}

func runView(cmd *cobra.Command, global *globalOptions, opts *viewOptions, args []string) error {
	cfg, err := loadViewConfig(cmd, global.configPath)
	if err != nil {
		return err
	}
	if global.debug {
		cfg.Logging.Level = "debug"
	}
	if opts.noLineNumbers {
		cfg.View.ShowLineNumbers = false
	}

	doc, err := openDocument(cmd.InOrStdin(), args, cfg.View.TabWidth)
	if err != nil {
		return err
	}
	logging.Default().Debug("document loaded",
		logging.FieldPath, doc.Name(),
		logging.FieldLines, doc.Size(),
		logging.FieldEncoding, doc.Encoding(),
		logging.FieldLanguage, doc.Language(),
	)

	state := initialState(cfg, opts, doc)

	if opts.dump {
		return dump(cmd.OutOrStdout(), doc, state, cfg, opts.color)
	}
	return view(doc, state, cfg)
}

// loadViewConfig reads the configuration with the flags that shadow config
// keys bound on top.
func loadViewConfig(cmd *cobra.Command, path string) (*config.Config, error) {
	v, err := config.NewViper(path)
	if err != nil {
		return nil, err
	}
	_ = v.BindPFlag("view.tab_width", cmd.Flags().Lookup("tab-width"))
	_ = v.BindPFlag("logging.file", cmd.Flags().Lookup("log-file"))
	return config.Load(v)
}

func openDocument(stdin io.Reader, args []string, tabWidth int) (*document.Document, error) {
	if len(args) == 1 && args[0] != "-" {
		return document.Load(args[0], tabWidth)
	}
	if f, ok := stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return nil, ErrNoInput
	}
	return document.Read("", stdin, tabWidth)
}

func initialState(cfg *config.Config, opts *viewOptions, doc *document.Document) *statepkg.ViewerState {
	state := statepkg.NewViewerState()
	state.ShowLineNumbers = cfg.View.ShowLineNumbers
	state.Pattern = opts.pattern
	state.Filtering = opts.filter

	switch {
	case opts.line > 0:
		state.TopLine = opts.line - 1
	case opts.pattern != "":
		if line := doc.FindNextMatchingLine(-1, opts.pattern); line != document.NoMatch {
			state.TopLine = line
		}
	}
	return state
}

// dump renders one frame as text. The state is settled against the
// viewport first, like the interactive viewer does on startup.
func dump(out io.Writer, doc *document.Document, state *statepkg.ViewerState, cfg *config.Config, colorMode string) error {
	theme, err := cfg.ColorTheme()
	if err != nil {
		return err
	}

	vp := statepkg.Viewport{Width: fallbackDumpWidth, Height: fallbackDumpHeight}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil && w > 0 && h > 0 {
			vp = statepkg.Viewport{Width: w, Height: h}
		}
	}

	reducer := statepkg.NewStateReducer(doc, cfg.ReducerOptions())
	if _, err := reducer.Reduce(state, statepkg.ResizeAction{}, vp); err != nil {
		return err
	}

	frame := renderui.Project(state, doc, vp, cfg.ProjectOptions())
	renderer := renderui.NewPlainRenderer(out, theme, renderui.IsColorEnabled(colorMode, out))
	renderer.SetScale(cfg.CellScale())
	return renderer.Render(frame)
}

func view(doc *document.Document, state *statepkg.ViewerState, cfg *config.Config) error {
	theme, err := cfg.ColorTheme()
	if err != nil {
		return err
	}

	logger, closeLog, err := sessionLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer closeLog()

	application, err := app.NewApplication(doc, state, app.Options{
		Reducer: cfg.ReducerOptions(),
		Scale:   cfg.CellScale(),
		Theme:   theme,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	defer func() {
		_ = application.Close()
	}()

	logger.Info("viewer started",
		logging.FieldPath, doc.Name(),
		logging.FieldLines, doc.Size(),
	)
	application.Run()
	return nil
}

// sessionLogger returns the logger used while the screen owns the terminal.
// Without a log file records are dropped.
func sessionLogger(cfg config.LoggingConfig) (*log.Logger, func(), error) {
	if cfg.File == "" {
		return logging.Discard(), func() {}, nil
	}
	logger, f, err := logging.OpenFile(cfg.File, cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = f.Close() }, nil
}
