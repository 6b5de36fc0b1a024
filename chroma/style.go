package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	textdiff "github.com/honlnk/text-diff-viewer"
)

// StyleFromPalette returns a function that maps chroma token types to
// textdiff styles based on the provided palette colors.
func StyleFromPalette(p textdiff.Palette) StyleFunc {
	return func(tt chromalib.TokenType) textdiff.Style {
		switch tt {
		// Type keywords (handled separately from other keywords)
		case chromalib.KeywordType:
			return textdiff.Style{Foreground: p.Type, Bold: true}

		// Keywords
		case chromalib.Keyword, chromalib.KeywordConstant, chromalib.KeywordDeclaration,
			chromalib.KeywordNamespace, chromalib.KeywordPseudo, chromalib.KeywordReserved:
			return textdiff.Style{Foreground: p.Keyword, Bold: true}

		// Comments
		case chromalib.Comment, chromalib.CommentHashbang, chromalib.CommentMultiline,
			chromalib.CommentPreproc, chromalib.CommentPreprocFile, chromalib.CommentSingle,
			chromalib.CommentSpecial:
			return textdiff.Style{Foreground: p.Comment}

		// Strings
		case chromalib.String, chromalib.StringAffix, chromalib.StringBacktick, chromalib.StringChar,
			chromalib.StringDelimiter, chromalib.StringDoc, chromalib.StringDouble,
			chromalib.StringEscape, chromalib.StringHeredoc, chromalib.StringInterpol,
			chromalib.StringOther, chromalib.StringRegex, chromalib.StringSingle,
			chromalib.StringSymbol:
			return textdiff.Style{Foreground: p.String}

		// Numbers
		case chromalib.Number, chromalib.NumberBin, chromalib.NumberFloat, chromalib.NumberHex,
			chromalib.NumberInteger, chromalib.NumberIntegerLong, chromalib.NumberOct:
			return textdiff.Style{Foreground: p.Number}

		// Operators
		case chromalib.Operator, chromalib.OperatorWord:
			return textdiff.Style{Foreground: p.Operator}

		// Function names
		case chromalib.NameFunction, chromalib.NameFunctionMagic:
			return textdiff.Style{Foreground: p.Function}

		// Constants
		case chromalib.NameConstant:
			return textdiff.Style{Foreground: p.Constant}

		// Punctuation
		case chromalib.Punctuation:
			return textdiff.Style{Foreground: p.Punctuation}

		default:
			return textdiff.Style{}
		}
	}
}
