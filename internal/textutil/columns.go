package textutil

import (
	"strings"

	"github.com/rivo/uniseg"
)

// DropColumns removes the first n display columns of text. A wide cluster cut
// in half by the boundary is replaced with spaces so the remaining text stays
// aligned with the column grid.
func DropColumns(text string, n int) string {
	if n <= 0 || text == "" {
		return text
	}
	if isASCII(text) {
		if n >= len(text) {
			return ""
		}
		return text[n:]
	}

	column := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var width int
		_, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if column+width <= n {
			column += width
			if column == n {
				return rest
			}
			continue
		}
		// Straddles the boundary.
		pad := column + width - n
		return strings.Repeat(" ", pad) + rest
	}
	return ""
}

// ClipToWidth returns the longest prefix of text that fits in width columns.
func ClipToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if isASCII(text) {
		if len(text) <= width {
			return text
		}
		return text[:width]
	}

	column := 0
	state := -1
	consumed := 0
	rest := text
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if column+w > width {
			break
		}
		column += w
		consumed += len(cluster)
	}
	return text[:consumed]
}

// ColumnAt converts a byte offset within text into a display column.
func ColumnAt(text string, offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset > len(text) {
		offset = len(text)
	}
	return DisplayWidth(text[:offset])
}
