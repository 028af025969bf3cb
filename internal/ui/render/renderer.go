package render

import (
	"github.com/gdamore/tcell/v2"
)

// Renderer draws frames on a tcell screen.
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
	scale  CellScale
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen, theme ColorTheme) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  theme,
		scale:  DefaultCellScale(),
	}
}

// SetScale changes the canvas resolution instructions are laid out in.
func (r *Renderer) SetScale(scale CellScale) {
	r.scale = scale.normalized()
}

// Theme returns the active colors.
func (r *Renderer) Theme() ColorTheme {
	return r.theme
}

// Render draws the entire frame.
func (r *Renderer) Render(frame Frame) {
	if r.screen == nil {
		return
	}
	r.screen.Clear()

	if frame.Help {
		r.drawHelpOverlay(frame.Width, frame.Height)
		r.screen.Show()
		return
	}

	for _, ins := range frame.Instructions(r.scale) {
		x := ins.X / r.scale.X
		y := ins.Y / r.scale.Y
		if y < 0 || y >= frame.Height || x < 0 || x >= frame.Width {
			continue
		}
		r.drawTextLine(x, y, frame.Width-x, ins.Text, r.theme.Style(ins.Role))
	}

	r.screen.Show()
}
