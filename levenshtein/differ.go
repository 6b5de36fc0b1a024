// Package levenshtein computes character, word, and line diffs between two
// texts using dynamic-programming edit-distance alignment with backtrace.
package levenshtein

import (
	"context"
	"strings"
	"time"

	textdiff "github.com/honlnk/text-diff-viewer"
	"github.com/honlnk/text-diff-viewer/segment"
)

// Compile-time interface verification.
var _ textdiff.Differ = (*Differ)(nil)

// Differ implements textdiff.Differ. It holds no state: each comparison
// receives fresh input and returns a fresh result, so a single Differ is
// safe for concurrent use.
type Differ struct{}

// NewDiffer creates a new Differ.
func NewDiffer() *Differ {
	return &Differ{}
}

// Compute compares two texts: normalize, optional case fold, segment,
// align, merge colliding operations, and build the diff records. Options
// are validated before any computation starts; the alignment is the only
// stage that can fail afterwards, and it fails fast with no partial state.
func (d *Differ) Compute(ctx context.Context, text1, text2 string, opts textdiff.Options) (*textdiff.Result, error) {
	if errs := textdiff.ValidateOptions(opts); len(errs) > 0 {
		return nil, errs[0]
	}

	normOpts := segment.NormalizeOptions{
		CollapseSpaces: opts.IgnoreWhitespace,
		MaxSpaceRun:    opts.MaxSpaceRun,
	}
	text1 = segment.Normalize(text1, normOpts)
	text2 = segment.Normalize(text2, normOpts)
	if opts.IgnoreCase {
		text1 = strings.ToLower(text1)
		text2 = strings.ToLower(text2)
	}

	units1 := segment.Split(text1, opts.Precision)
	units2 := segment.Split(text2, opts.Precision)

	distance, ops, err := align(ctx, units1, units2, time.Now().Add(opts.Timeout))
	if err != nil {
		return nil, err
	}

	return &textdiff.Result{
		EditDistance: distance,
		Similarity:   similarity(text1, text2, distance),
		Records:      toRecords(optimize(ops), units1),
		Text1:        text1,
		Text2:        text2,
	}, nil
}
