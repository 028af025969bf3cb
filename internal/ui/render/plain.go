package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/rivo/uniseg"
)

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// PlainRenderer writes frames as text, one line per screen row. It backs the
// non-interactive dump mode.
type PlainRenderer struct {
	out    io.Writer
	scale  CellScale
	styles map[Role]lipgloss.Style
	color  bool
}

// NewPlainRenderer creates a renderer writing to out. With color disabled the
// output carries no escape sequences.
func NewPlainRenderer(out io.Writer, theme ColorTheme, color bool) *PlainRenderer {
	lr := lipgloss.NewRenderer(out)
	if color {
		lr.SetColorProfile(termenv.ANSI256)
	} else {
		lr.SetColorProfile(termenv.Ascii)
	}

	roles := []Role{
		RoleText, RoleLineNumber, RoleLineNumberMatched, RoleHighlight,
		RoleStatusPosition, RoleStatusPrompt, RoleStatusPattern, RoleStatusInfo,
	}
	styles := make(map[Role]lipgloss.Style, len(roles))
	for _, role := range roles {
		style := lr.NewStyle()
		if c, ok := lipglossColor(theme.RoleColor(role)); ok {
			style = style.Foreground(c)
		}
		if role == RoleHighlight || role == RoleLineNumberMatched {
			style = style.Bold(true)
		}
		styles[role] = style
	}

	return &PlainRenderer{out: out, scale: DefaultCellScale(), styles: styles, color: color}
}

// SetScale changes the canvas resolution instructions are laid out in.
func (p *PlainRenderer) SetScale(scale CellScale) {
	p.scale = scale.normalized()
}

type plainCell struct {
	text string // grapheme cluster; empty for the tail of a wide cluster
	role Role
}

// Render writes frame to the output. Trailing blanks are trimmed from every
// row.
func (p *PlainRenderer) Render(frame Frame) error {
	if frame.Width <= 0 || frame.Height <= 0 {
		return nil
	}
	grid := make([][]plainCell, frame.Height)
	for y := range grid {
		grid[y] = make([]plainCell, frame.Width)
		for x := range grid[y] {
			grid[y][x] = plainCell{text: " "}
		}
	}

	for _, ins := range frame.Instructions(p.scale) {
		x := ins.X / p.scale.X
		y := ins.Y / p.scale.Y
		if y < 0 || y >= frame.Height {
			continue
		}
		placeCells(grid[y], x, ins.Text, ins.Role)
	}

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(p.renderRow(row))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(p.out, b.String())
	if err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

func placeCells(row []plainCell, x int, text string, role Role) {
	state := -1
	rest := text
	for len(rest) > 0 && x < len(row) {
		var cluster string
		var width int
		cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if width <= 0 {
			width = 1
		}
		if x+width > len(row) {
			return
		}
		row[x] = plainCell{text: cluster, role: role}
		for i := 1; i < width; i++ {
			row[x+i] = plainCell{role: role}
		}
		x += width
	}
}

func (p *PlainRenderer) renderRow(row []plainCell) string {
	end := len(row)
	for end > 0 && row[end-1].text == " " {
		end--
	}

	var b strings.Builder
	var run strings.Builder
	runRole := RoleText
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if p.color {
			b.WriteString(p.styles[runRole].Render(run.String()))
		} else {
			b.WriteString(run.String())
		}
		run.Reset()
	}
	for _, cell := range row[:end] {
		if cell.role != runRole {
			flush()
			runRole = cell.role
		}
		run.WriteString(cell.text)
	}
	flush()
	return b.String()
}

func lipglossColor(c tcell.Color) (lipgloss.Color, bool) {
	if c == tcell.ColorDefault {
		return "", false
	}
	hex := c.Hex()
	if hex < 0 {
		return "", false
	}
	return lipgloss.Color(fmt.Sprintf("#%06x", hex)), true
}
