package textutil

import "strings"

// invisibleRunes are formatting characters that reorder or hide text without
// occupying a cell. They are drawn as a visible label instead.
var invisibleRunes = map[rune]string{
	0x061C: "ALM",
	0x200B: "ZWSP",
	0x200C: "ZWNJ",
	0x200D: "ZWJ",
	0x200E: "LRM",
	0x200F: "RLM",
	0x202A: "LRE",
	0x202B: "RLE",
	0x202C: "PDF",
	0x202D: "LRO",
	0x202E: "RLO",
	0x2066: "LRI",
	0x2067: "RLI",
	0x2068: "FSI",
	0x2069: "PDI",
	0xFEFF: "BOM",
}

// replacement returns what r is drawn as, or false when r is safe.
func replacement(r rune) (string, bool) {
	if name, ok := invisibleRunes[r]; ok {
		return "⟪" + name + "⟫", true
	}
	switch {
	case r == '\t':
		return "", false
	case r == '\n' || r == '\r':
		return " ", true
	case r < 0x20 || r == 0x7f:
		return "?", true
	case r >= 0x80 && r <= 0x9f:
		// C1 controls; 0x9b alone starts a CSI sequence on some terminals.
		return "?", true
	}
	return "", false
}

func needsReplacement(r rune) bool {
	_, ok := replacement(r)
	return ok
}

// SanitizeTerminalText replaces control characters so document text cannot
// inject terminal escape sequences when drawn. Tabs are left alone; callers
// expand them first.
func SanitizeTerminalText(text string) string {
	first := strings.IndexFunc(text, needsReplacement)
	if first < 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 8)
	b.WriteString(text[:first])
	for _, r := range text[first:] {
		if repl, ok := replacement(r); ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// PrepareLine turns one raw line from the line source into the text stored
// in a document: trailing CR dropped, tabs expanded, controls neutralised.
func PrepareLine(raw string, tabWidth int) string {
	raw = strings.TrimSuffix(raw, "\r")
	return SanitizeTerminalText(ExpandTabs(raw, tabWidth))
}
