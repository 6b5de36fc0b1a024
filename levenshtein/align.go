package levenshtein

import (
	"context"
	"fmt"
	"time"

	textdiff "github.com/honlnk/text-diff-viewer"
)

// opKind identifies a raw alignment operation.
type opKind int

const (
	opReplace opKind = iota
	opDelete
	opInsert
)

// op is a single unit-level edit produced by backtracing the alignment
// matrix. pos indexes into the source unit sequence; for inserts it is the
// insertion point (the row index at emission time), so every operation's
// position reads uniformly against the source.
type op struct {
	kind opKind
	pos  int
	old  string // delete/replace
	new  string // insert/replace
}

// align computes the minimum-edit-distance alignment between two unit
// sequences. It returns the edit distance and the operation sequence in
// left-to-right document order.
//
// The matrix is built bottom-up in row-major order as a flat slice. The
// budget is checked once per outer row rather than per cell, so the
// worst-case overrun is bounded by one row's width of compute. On timeout
// or cancellation no partial result is returned.
func align(ctx context.Context, units1, units2 []string, deadline time.Time) (int, []op, error) {
	m, n := len(units1), len(units2)
	stride := n + 1
	table := make([]int, (m+1)*stride)

	for j := 0; j <= n; j++ {
		table[j] = j
	}
	for i := 1; i <= m; i++ {
		if err := ctx.Err(); err != nil {
			return 0, nil, err
		}
		if time.Now().After(deadline) {
			return 0, nil, fmt.Errorf("aligning %dx%d units: %w", m, n, textdiff.ErrTimeout)
		}

		table[i*stride] = i
		for j := 1; j <= n; j++ {
			if units1[i-1] == units2[j-1] {
				table[i*stride+j] = table[(i-1)*stride+j-1]
				continue
			}
			best := table[(i-1)*stride+j-1] // replace
			if up := table[(i-1)*stride+j]; up < best {
				best = up // delete
			}
			if left := table[i*stride+j-1]; left < best {
				best = left // insert
			}
			table[i*stride+j] = best + 1
		}
	}

	return table[m*stride+n], backtrace(table, stride, units1, units2), nil
}

// backtrace walks the matrix from (m,n) back to (0,0) and reconstructs the
// operation sequence. Matching units move diagonally without emitting an
// operation; otherwise transitions are tried in the fixed order replace,
// delete, insert, which keeps ambiguous alignments reproducible. Operations
// come out in reverse document order and are reversed before returning.
func backtrace(table []int, stride int, units1, units2 []string) []op {
	var ops []op

	i, j := len(units1), len(units2)
	for i > 0 || j > 0 {
		if i > 0 && j > 0 && units1[i-1] == units2[j-1] {
			i--
			j--
			continue
		}
		cur := table[i*stride+j]
		switch {
		case i > 0 && j > 0 && cur == table[(i-1)*stride+j-1]+1:
			ops = append(ops, op{kind: opReplace, pos: i - 1, old: units1[i-1], new: units2[j-1]})
			i--
			j--
		case i > 0 && cur == table[(i-1)*stride+j]+1:
			ops = append(ops, op{kind: opDelete, pos: i - 1, old: units1[i-1]})
			i--
		default:
			ops = append(ops, op{kind: opInsert, pos: i, new: units2[j-1]})
			j--
		}
	}

	for left, right := 0, len(ops)-1; left < right; left, right = left+1, right-1 {
		ops[left], ops[right] = ops[right], ops[left]
	}
	return ops
}
