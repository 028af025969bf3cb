package fs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	textutil "github.com/kk-code-lab/fv/internal/textutil"
)

// StdinName is the display name of a line source read from standard input.
const StdinName = "(stdin)"

// ErrBinaryContent is returned when a line source does not look like text.
var ErrBinaryContent = errors.New("content looks binary")

// LineSource is the decoded content of a file, split into display-ready lines.
type LineSource struct {
	Name     string
	Path     string
	Encoding Encoding
	Lines    []string
	// Sample holds the leading bytes of the decoded text, for content sniffing.
	Sample []byte
}

// ReadLines opens path and splits it into lines.
func ReadLines(path string, tabWidth int) (*LineSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	src, err := ReadLinesFrom(f, path, tabWidth)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	src.Name = filepath.Base(path)
	src.Path = path
	return src, nil
}

// ReadLinesFrom reads r to EOF and splits it into lines. name is only used to
// short-circuit binary detection by extension.
func ReadLinesFrom(r io.Reader, name string, tabWidth int) (*LineSource, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	enc, err := Sniff(name, content)
	if err != nil {
		return nil, err
	}
	text, err := Decode(content)
	if err != nil {
		return nil, err
	}

	src := &LineSource{
		Name:     StdinName,
		Encoding: enc,
		Lines:    SplitLines(text, tabWidth),
	}
	sample := text
	if len(sample) > sniffSize {
		sample = sample[:sniffSize]
	}
	src.Sample = []byte(sample)
	return src, nil
}

// SplitLines splits text on newlines. A trailing newline
// does not produce an extra empty line, and empty text has no lines.
func SplitLines(text string, tabWidth int) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	raw := strings.Split(text, "\n")
	lines := make([]string, len(raw))
	for i, line := range raw {
		lines[i] = textutil.PrepareLine(line, tabWidth)
	}
	return lines
}
