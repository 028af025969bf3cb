package document

import "strings"

// FindNextMatchingLine scans forward from current+1 and returns the first line
// containing pattern, or NoMatch. It never wraps. current must be >= -1.
// An empty pattern matches nothing.
func (d *Document) FindNextMatchingLine(current int, pattern string) int {
	if pattern == "" || current >= d.Size()-1 {
		return NoMatch
	}
	for i := current + 1; i < d.Size(); i++ {
		if strings.Contains(d.lines[i], pattern) {
			return i
		}
	}
	return NoMatch
}

// FindPreviousMatchingLine scans backward from current-1 to 0 and returns the
// first line containing pattern, or NoMatch. It never wraps.
func (d *Document) FindPreviousMatchingLine(current int, pattern string) int {
	if pattern == "" || current < 1 {
		return NoMatch
	}
	start := current - 1
	if start > d.Size()-1 {
		start = d.Size() - 1
	}
	for i := start; i >= 0; i-- {
		if strings.Contains(d.lines[i], pattern) {
			return i
		}
	}
	return NoMatch
}

// LocateNextMatch returns the next line after current containing pattern,
// wrapping to the top of the document. It returns current when pattern is
// empty or nothing matches.
func (d *Document) LocateNextMatch(current int, pattern string) int {
	line, _ := d.LocateNextMatchWrapped(current, pattern)
	return line
}

// LocatePreviousMatch is the backward counterpart of LocateNextMatch,
// wrapping to the bottom of the document.
func (d *Document) LocatePreviousMatch(current int, pattern string) int {
	line, _ := d.LocatePreviousMatchWrapped(current, pattern)
	return line
}

// LocateNextMatchWrapped is LocateNextMatch that also reports whether the
// result was found only after wrapping.
func (d *Document) LocateNextMatchWrapped(current int, pattern string) (int, bool) {
	if pattern == "" {
		return current, false
	}
	if line := d.FindNextMatchingLine(current, pattern); line != NoMatch {
		return line, false
	}
	if line := d.FindNextMatchingLine(-1, pattern); line != NoMatch {
		return line, true
	}
	return current, false
}

// LocatePreviousMatchWrapped is LocatePreviousMatch that also reports whether
// the result was found only after wrapping.
func (d *Document) LocatePreviousMatchWrapped(current int, pattern string) (int, bool) {
	if pattern == "" {
		return current, false
	}
	if line := d.FindPreviousMatchingLine(current, pattern); line != NoMatch {
		return line, false
	}
	if line := d.FindPreviousMatchingLine(d.Size(), pattern); line != NoMatch {
		return line, true
	}
	return current, false
}
