// Package chroma provides syntax highlighting using the chroma library.
package chroma

import (
	"errors"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	textdiff "github.com/honlnk/text-diff-viewer"
)

// Compile-time interface verification.
var _ textdiff.Tokenizer = (*Tokenizer)(nil)

// StyleFunc maps chroma token types to textdiff styles.
type StyleFunc func(chromalib.TokenType) textdiff.Style

// Tokenizer extracts syntax tokens using chroma.
type Tokenizer struct {
	styleFunc StyleFunc
}

// NewTokenizer creates a new chroma-based tokenizer with the given style function.
// Use StyleFromPalette to create a style function from a textdiff.Palette.
func NewTokenizer(styleFunc StyleFunc) (*Tokenizer, error) {
	if styleFunc == nil {
		return nil, errors.New("chroma: styleFunc cannot be nil")
	}
	return &Tokenizer{styleFunc: styleFunc}, nil
}

// Tokenize splits source text into syntax-highlighted tokens for the given
// language. Tokenizing the whole text at once keeps multi-line constructs
// like block comments intact. Returns nil if the language is not supported
// or an error occurs, and an empty slice for empty source (valid input, no
// tokens).
func (t *Tokenizer) Tokenize(language, source string) []textdiff.Token {
	if source == "" {
		return []textdiff.Token{}
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}

	// Coalesce for better performance with consecutive tokens of the same type
	lexer = chromalib.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var tokens []textdiff.Token
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		tokens = append(tokens, textdiff.Token{
			Text:  token.Value,
			Style: t.styleFunc(token.Type),
		})
	}

	return tokens
}
