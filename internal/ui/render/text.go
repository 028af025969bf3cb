package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	textutil "github.com/kk-code-lab/fv/internal/textutil"
)

// drawTextLine draws text one grapheme cluster per cell group and returns the
// column after the last drawn cell. Clusters that would cross maxWidth are
// dropped.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		var width int
		cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if width <= 0 {
			width = 1
		}
		if x-startX+width > maxWidth {
			break
		}

		runes := []rune(cluster)
		var combc []rune
		if len(runes) > 1 {
			combc = runes[1:]
		}
		r.screen.SetContent(x, y, runes[0], combc, style)
		x += width
	}
	return x
}

func (r *Renderer) fillRow(y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

func (r *Renderer) truncateTextToWidth(text string, maxWidth int) string {
	return textutil.ClipToWidth(text, maxWidth)
}
