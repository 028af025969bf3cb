// Package langdetect names the language of a viewed file for the status line.
// It uses go-enry, trying the cheap filename and shebang strategies before
// the content classifier.
package langdetect

import (
	"github.com/go-enry/go-enry/v2"
)

// Detect returns the detected language of a file, or "" when it cannot tell.
// name may be empty for content read from standard input.
func Detect(name string, sample []byte) string {
	if name != "" {
		if lang, safe := enry.GetLanguageByFilename(name); safe && lang != "" {
			return lang
		}
		if lang, safe := enry.GetLanguageByExtension(name); safe && lang != "" {
			return lang
		}
	}

	if len(sample) == 0 {
		return ""
	}

	if lang, safe := enry.GetLanguageByShebang(sample); safe && lang != "" {
		return lang
	}

	if name == "" {
		return ""
	}
	if enry.IsVendor(name) || enry.IsGenerated(name, sample) {
		return ""
	}
	return enry.GetLanguage(name, sample)
}
