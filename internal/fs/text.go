package fs

import (
	"bytes"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	// sniffSize is how many leading bytes decide between text and binary.
	sniffSize = 4096
	// maxControlPercent of control bytes in a non-UTF-8 sample marks it binary.
	maxControlPercent = 30
)

// Encoding identifies how the bytes of a line source were decoded.
type Encoding int

const (
	EncodingUTF8 Encoding = iota
	EncodingUTF8BOM
	EncodingUTF16LE
	EncodingUTF16BE
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8BOM:
		return "utf-8-bom"
	case EncodingUTF16LE:
		return "utf-16le"
	case EncodingUTF16BE:
		return "utf-16be"
	default:
		return "utf-8"
	}
}

// binaryExtensions are rejected without reading further.
var binaryExtensions = []string{
	".7z", ".bin", ".bmp", ".bz2", ".class", ".dll", ".dylib", ".exe",
	".gif", ".gz", ".ico", ".iso", ".jar", ".jpeg", ".jpg", ".mp3", ".mp4",
	".o", ".pdf", ".png", ".so", ".tar", ".tgz", ".wasm", ".xz", ".zip",
}

// Sniff reports the encoding of content, or ErrBinaryContent when it does
// not look like text. name is only consulted for its extension.
func Sniff(name string, content []byte) (Encoding, error) {
	if name != "" && slices.Contains(binaryExtensions, strings.ToLower(filepath.Ext(name))) {
		return EncodingUTF8, ErrBinaryContent
	}

	enc := DetectEncoding(content)
	if enc != EncodingUTF8 || len(content) == 0 {
		return enc, nil
	}

	sample := content[:min(len(content), sniffSize)]
	if bytes.IndexByte(sample, 0x00) >= 0 {
		return enc, ErrBinaryContent
	}
	if utf8.Valid(sample) {
		return enc, nil
	}

	controls := 0
	for _, b := range sample {
		if isControlByte(b) {
			controls++
		}
	}
	if controls*100/len(sample) >= maxControlPercent {
		return enc, ErrBinaryContent
	}
	return enc, nil
}

// isControlByte reports C0 controls other than tab, newlines and escape.
func isControlByte(b byte) bool {
	switch b {
	case '\t', '\n', '\r', 0x1b:
		return false
	}
	return b < 0x20 || b == 0x7f
}

// DetectEncoding inspects the byte order mark at the start of content.
func DetectEncoding(content []byte) Encoding {
	switch {
	case bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF}):
		return EncodingUTF8BOM
	case bytes.HasPrefix(content, []byte{0xFF, 0xFE}):
		return EncodingUTF16LE
	case bytes.HasPrefix(content, []byte{0xFE, 0xFF}):
		return EncodingUTF16BE
	}
	return EncodingUTF8
}

// Decode converts content to UTF-8. A leading byte order mark selects UTF-8
// or UTF-16 and is dropped; invalid UTF-8 becomes U+FFFD.
func Decode(content []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, content)
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	return string(out), nil
}
