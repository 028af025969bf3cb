package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorTheme defines application colors.
type ColorTheme struct {
	Background        tcell.Color
	Foreground        tcell.Color
	LineNumber        tcell.Color
	LineNumberMatched tcell.Color
	Highlight         tcell.Color
	StatusPosition    tcell.Color
	StatusPrompt      tcell.Color
	StatusInfo        tcell.Color
	HelpTitleBg       tcell.Color
	HelpTitleFg       tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:        tcell.ColorDefault,
		Foreground:        tcell.ColorDefault,
		LineNumber:        tcell.Color36,  // dark cyan
		LineNumberMatched: tcell.Color51,  // cyan
		Highlight:         tcell.Color226, // yellow
		StatusPosition:    tcell.Color122, // aquamarine
		StatusPrompt:      tcell.Color136, // dark goldenrod
		StatusInfo:        tcell.ColorLightSlateGray,
		HelpTitleBg:       tcell.Color33,
		HelpTitleFg:       tcell.ColorWhite,
	}
}

// RoleColor returns the foreground color of a draw instruction role.
func (t ColorTheme) RoleColor(role Role) tcell.Color {
	switch role {
	case RoleLineNumber:
		return t.LineNumber
	case RoleLineNumberMatched:
		return t.LineNumberMatched
	case RoleHighlight:
		return t.Highlight
	case RoleStatusPosition:
		return t.StatusPosition
	case RoleStatusPrompt, RoleStatusPattern:
		return t.StatusPrompt
	case RoleStatusInfo:
		return t.StatusInfo
	default:
		return t.Foreground
	}
}

// Style returns the full cell style of a role.
func (t ColorTheme) Style(role Role) tcell.Style {
	style := tcell.StyleDefault.Background(t.Background).Foreground(t.RoleColor(role))
	if role == RoleHighlight || role == RoleLineNumberMatched {
		style = style.Bold(true)
	}
	return style
}

// WithOverrides replaces theme colors by role name ("line-number",
// "highlight", ...). Values are tcell color names or #rrggbb. Empty values
// are skipped.
func (t ColorTheme) WithOverrides(names map[string]string) (ColorTheme, error) {
	keys := make([]string, 0, len(names))
	for key := range names {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := strings.TrimSpace(names[key])
		if value == "" {
			continue
		}
		color, err := ParseColor(value)
		if err != nil {
			return t, fmt.Errorf("theme %s: %w", key, err)
		}
		switch key {
		case "foreground", RoleText.String():
			t.Foreground = color
		case "background":
			t.Background = color
		case RoleLineNumber.String():
			t.LineNumber = color
		case RoleLineNumberMatched.String():
			t.LineNumberMatched = color
		case RoleHighlight.String():
			t.Highlight = color
		case RoleStatusPosition.String():
			t.StatusPosition = color
		case RoleStatusPrompt.String(), RoleStatusPattern.String():
			t.StatusPrompt = color
		case RoleStatusInfo.String():
			t.StatusInfo = color
		default:
			return t, fmt.Errorf("unknown theme color %q", key)
		}
	}
	return t, nil
}

// ParseColor resolves a tcell color name, palette index name ("color51") or
// #rrggbb value.
func ParseColor(name string) (tcell.Color, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "default" || lower == "reset" {
		return tcell.ColorDefault, nil
	}
	if rest, ok := strings.CutPrefix(lower, "color"); ok {
		if index, err := strconv.Atoi(rest); err == nil && index >= 0 && index < 256 {
			return tcell.PaletteColor(index), nil
		}
	}
	color := tcell.GetColor(lower)
	if color == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("unknown color %q", name)
	}
	return color, nil
}
