package mock

import (
	"context"

	textdiff "github.com/honlnk/text-diff-viewer"
)

// Compile-time interface verification.
var _ textdiff.Viewer = (*Viewer)(nil)

// Viewer is a mock implementation of textdiff.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, result *textdiff.Result) error
}

func (v *Viewer) View(ctx context.Context, result *textdiff.Result) error {
	return v.ViewFn(ctx, result)
}
