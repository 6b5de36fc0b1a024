// Package segment prepares texts for diff computation: normalization and
// splitting into comparison units.
package segment

import "strings"

// bom is the byte-order mark code point stripped from the start of a text.
const bom = "\uFEFF"

// NormalizeOptions configures whitespace handling during normalization.
type NormalizeOptions struct {
	CollapseSpaces bool // convert tabs to spaces and clamp space runs
	MaxSpaceRun    int  // longest run of spaces kept when collapsing; 0 means 1
}

// Normalize prepares a text for comparison. It strips a single leading
// byte-order mark and unifies line endings to LF. CRLF pairs are consumed
// before lone CRs so a pair is never double-converted. With CollapseSpaces
// set, tabs become single spaces and runs of spaces are clamped to
// MaxSpaceRun. The empty string passes through unchanged.
func Normalize(text string, opts NormalizeOptions) string {
	text = strings.TrimPrefix(text, bom)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if opts.CollapseSpaces {
		text = collapseSpaces(text, max(opts.MaxSpaceRun, 1))
	}
	return text
}

// collapseSpaces converts tabs to spaces and drops spaces beyond maxRun
// consecutive ones.
func collapseSpaces(s string, maxRun int) string {
	var sb strings.Builder
	sb.Grow(len(s))

	run := 0
	for _, r := range s {
		if r == '\t' {
			r = ' '
		}
		if r == ' ' {
			run++
			if run > maxRun {
				continue
			}
		} else {
			run = 0
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
