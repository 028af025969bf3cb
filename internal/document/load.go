package document

import (
	"io"

	fspkg "github.com/kk-code-lab/fv/internal/fs"
	"github.com/kk-code-lab/fv/internal/langdetect"
)

// Load reads the file at path into a document, detecting its encoding and
// language.
func Load(path string, tabWidth int) (*Document, error) {
	src, err := fspkg.ReadLines(path, tabWidth)
	if err != nil {
		return nil, err
	}
	return fromSource(src, src.Name), nil
}

// Read builds a document from r. name is used for display and language
// detection; pass "" for standard input.
func Read(name string, r io.Reader, tabWidth int) (*Document, error) {
	src, err := fspkg.ReadLinesFrom(r, name, tabWidth)
	if err != nil {
		return nil, err
	}
	if name != "" {
		src.Name = name
	}
	return fromSource(src, name), nil
}

func fromSource(src *fspkg.LineSource, detectName string) *Document {
	return &Document{
		name:     src.Name,
		language: langdetect.Detect(detectName, src.Sample),
		encoding: src.Encoding.String(),
		lines:    src.Lines,
	}
}
