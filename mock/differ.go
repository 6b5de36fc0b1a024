// Package mock provides test doubles for textdiff interfaces.
package mock

import (
	"context"

	textdiff "github.com/honlnk/text-diff-viewer"
)

// Compile-time interface verification.
var _ textdiff.Differ = (*Differ)(nil)

// Differ is a mock implementation of textdiff.Differ.
type Differ struct {
	ComputeFn func(ctx context.Context, text1, text2 string, opts textdiff.Options) (*textdiff.Result, error)
}

func (d *Differ) Compute(ctx context.Context, text1, text2 string, opts textdiff.Options) (*textdiff.Result, error) {
	return d.ComputeFn(ctx, text1, text2, opts)
}
