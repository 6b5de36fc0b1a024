package segment_test

import (
	"strings"
	"testing"

	textdiff "github.com/honlnk/text-diff-viewer"
	"github.com/honlnk/text-diff-viewer/segment"
	"github.com/stretchr/testify/assert"
)

func TestSplit_Character(t *testing.T) {
	t.Parallel()

	t.Run("splits into code points", func(t *testing.T) {
		t.Parallel()

		units := segment.Split("abc", textdiff.PrecisionCharacter)

		assert.Equal(t, []string{"a", "b", "c"}, units)
	})

	t.Run("keeps multi-byte runes intact", func(t *testing.T) {
		t.Parallel()

		units := segment.Split("héllo 世界", textdiff.PrecisionCharacter)

		assert.Equal(t, []string{"h", "é", "l", "l", "o", " ", "世", "界"}, units)
	})

	t.Run("empty text yields nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, segment.Split("", textdiff.PrecisionCharacter))
	})
}

func TestSplit_Word(t *testing.T) {
	t.Parallel()

	t.Run("retains whitespace runs as units", func(t *testing.T) {
		t.Parallel()

		units := segment.Split("hello  world", textdiff.PrecisionWord)

		assert.Equal(t, []string{"hello", "  ", "world"}, units)
	})

	t.Run("leading and trailing whitespace", func(t *testing.T) {
		t.Parallel()

		units := segment.Split(" a b ", textdiff.PrecisionWord)

		assert.Equal(t, []string{" ", "a", " ", "b", " "}, units)
	})

	t.Run("mixed whitespace is one run", func(t *testing.T) {
		t.Parallel()

		units := segment.Split("a \t\n b", textdiff.PrecisionWord)

		assert.Equal(t, []string{"a", " \t\n ", "b"}, units)
	})

	t.Run("single word", func(t *testing.T) {
		t.Parallel()

		units := segment.Split("word", textdiff.PrecisionWord)

		assert.Equal(t, []string{"word"}, units)
	})

	t.Run("empty text yields nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, segment.Split("", textdiff.PrecisionWord))
	})
}

func TestSplit_Line(t *testing.T) {
	t.Parallel()

	t.Run("retains newlines as units", func(t *testing.T) {
		t.Parallel()

		units := segment.Split("a\nb\nc", textdiff.PrecisionLine)

		assert.Equal(t, []string{"a", "\n", "b", "\n", "c"}, units)
	})

	t.Run("consecutive newlines produce no empty units", func(t *testing.T) {
		t.Parallel()

		units := segment.Split("a\n\nb", textdiff.PrecisionLine)

		assert.Equal(t, []string{"a", "\n", "\n", "b"}, units)
	})

	t.Run("trailing newline", func(t *testing.T) {
		t.Parallel()

		units := segment.Split("a\n", textdiff.PrecisionLine)

		assert.Equal(t, []string{"a", "\n"}, units)
	})

	t.Run("empty text yields nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, segment.Split("", textdiff.PrecisionLine))
	})
}

func TestSplit_RoundTrip(t *testing.T) {
	t.Parallel()

	texts := []string{
		"",
		"hello world",
		"  leading and trailing  ",
		"multi\nline\ntext\n",
		"tabs\tand  spaces",
		"unicode: héllo 世界\n",
	}
	precisions := []textdiff.Precision{
		textdiff.PrecisionCharacter,
		textdiff.PrecisionWord,
		textdiff.PrecisionLine,
	}

	for _, text := range texts {
		for _, precision := range precisions {
			units := segment.Split(text, precision)

			assert.Equal(t, text, strings.Join(units, ""),
				"split at %s precision must round-trip %q", precision, text)
		}
	}
}
