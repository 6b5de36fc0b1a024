package mock

import (
	textdiff "github.com/honlnk/text-diff-viewer"
)

// Compile-time interface verification.
var (
	_ textdiff.Tokenizer        = (*Tokenizer)(nil)
	_ textdiff.LanguageDetector = (*LanguageDetector)(nil)
)

// Tokenizer is a mock implementation of textdiff.Tokenizer.
type Tokenizer struct {
	TokenizeFn func(language, source string) []textdiff.Token
}

func (t *Tokenizer) Tokenize(language, source string) []textdiff.Token {
	return t.TokenizeFn(language, source)
}

// LanguageDetector is a mock implementation of textdiff.LanguageDetector.
type LanguageDetector struct {
	DetectFromPathFn func(path string) string
}

func (d *LanguageDetector) DetectFromPath(path string) string {
	return d.DetectFromPathFn(path)
}
