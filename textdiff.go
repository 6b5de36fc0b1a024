// Package textdiff provides domain types for computing and viewing
// character-, word-, and line-level text diffs.
package textdiff

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrTimeout is returned when the alignment computation exceeds its
// wall-clock budget. No partial result accompanies it; callers should retry
// with a larger budget or a coarser precision.
var ErrTimeout = errors.New("diff computation timed out")

// Kind identifies the type of edit described by a Record.
type Kind int

// Record kinds.
const (
	KindAdd Kind = iota
	KindDelete
	KindModify
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAdd:
		return "add"
	case KindDelete:
		return "delete"
	case KindModify:
		return "modify"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Record describes a single edit anchored to a position in the source text.
type Record struct {
	Position int    // byte offset into the normalized source text
	Kind     Kind   // add, delete, or modify
	Content  string // new text for add/modify, removed text for delete
	Original string // overwritten text for modify, removed text for delete
}

// Result is the complete output of one comparison. It is immutable once
// produced: every consumer (viewer, statistics, replay) reads the same value.
type Result struct {
	EditDistance int      // minimum number of unit-level edits
	Similarity   float64  // 0-100, two decimal places
	Records      []Record // ordered by Position
	Text1        string   // normalized source text
	Text2        string   // normalized target text
}

// Precision selects the comparison unit for alignment.
type Precision int

// Comparison precisions.
const (
	PrecisionCharacter Precision = iota
	PrecisionWord
	PrecisionLine
)

// String returns the short name of the precision.
func (p Precision) String() string {
	switch p {
	case PrecisionCharacter:
		return "character"
	case PrecisionWord:
		return "word"
	case PrecisionLine:
		return "line"
	default:
		return fmt.Sprintf("Precision(%d)", int(p))
	}
}

// ParsePrecision converts a flag value to a Precision.
// Accepts "character" (or "char"), "word", and "line".
func ParsePrecision(s string) (Precision, error) {
	switch s {
	case "character", "char":
		return PrecisionCharacter, nil
	case "word":
		return PrecisionWord, nil
	case "line":
		return PrecisionLine, nil
	default:
		return 0, fmt.Errorf("unknown precision %q (want character, word, or line)", s)
	}
}

// Options configures a single comparison. The zero value is not valid; start
// from DefaultOptions.
type Options struct {
	Timeout          time.Duration // wall-clock budget for the alignment
	Precision        Precision     // comparison unit granularity
	IgnoreCase       bool          // lowercase both texts before comparing
	IgnoreWhitespace bool          // convert tabs to spaces and clamp space runs
	MaxSpaceRun      int           // longest space run kept with IgnoreWhitespace; 0 means 1
}

// DefaultOptions returns the options used when the caller has no preference.
func DefaultOptions() Options {
	return Options{
		Timeout:   5 * time.Second,
		Precision: PrecisionCharacter,
	}
}

// Segment represents a portion of text with a changed/unchanged marker.
// Consumers rebuild the visual form of a diff from segments.
type Segment struct {
	Text    string // the text content of this segment
	Changed bool   // true if this segment differs between the two texts
}

// Differ computes the difference between two texts.
type Differ interface {
	// Compute normalizes, segments, and aligns the two texts and returns the
	// resulting records. It fails with ErrTimeout when the alignment exceeds
	// opts.Timeout, and honors ctx cancellation at the same granularity.
	Compute(ctx context.Context, text1, text2 string, opts Options) (*Result, error)
}

// Viewer displays a diff result to the user.
type Viewer interface {
	// View displays the result and blocks until the user exits.
	View(ctx context.Context, result *Result) error
}
