// Package document holds the immutable lines being viewed and answers
// substring-search queries over them.
package document

import (
	"errors"
	"fmt"
	"strings"
)

// NoMatch is returned by the search primitives when no line matches.
const NoMatch = -1

// ErrIndexOutOfRange is returned by Line for an index outside [0, Size).
var ErrIndexOutOfRange = errors.New("line index out of range")

// Document is an ordered, read-only sequence of lines. It is safe to share
// between viewers.
type Document struct {
	name     string
	language string
	encoding string
	lines    []string
}

// Option sets document metadata.
type Option func(*Document)

// WithName sets the display name shown in the status line.
func WithName(name string) Option {
	return func(d *Document) { d.name = name }
}

// WithLanguage records the detected language of the content.
func WithLanguage(language string) Option {
	return func(d *Document) { d.language = language }
}

// WithEncoding records the source encoding label.
func WithEncoding(encoding string) Option {
	return func(d *Document) { d.encoding = encoding }
}

// New creates a document over a private copy of lines.
func New(lines []string, opts ...Option) *Document {
	d := &Document{lines: append([]string(nil), lines...)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Document) Name() string     { return d.name }
func (d *Document) Language() string { return d.language }
func (d *Document) Encoding() string { return d.encoding }

// Size returns the number of lines.
func (d *Document) Size() int {
	if d == nil {
		return 0
	}
	return len(d.lines)
}

// Line returns the text of line i.
func (d *Document) Line(i int) (string, error) {
	if i < 0 || i >= d.Size() {
		return "", fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, d.Size())
	}
	return d.lines[i], nil
}

// Contains reports whether line i exists and contains pattern.
func (d *Document) Contains(i int, pattern string) bool {
	if i < 0 || i >= d.Size() {
		return false
	}
	return strings.Contains(d.lines[i], pattern)
}
