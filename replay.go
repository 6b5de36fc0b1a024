package textdiff

import "strings"

// Apply replays diff records against the normalized source text and returns
// the reconstructed target text. Records must be ordered by Position, as
// produced by a Differ.
func Apply(source string, records []Record) string {
	var sb strings.Builder
	sb.Grow(len(source))

	pos := 0
	for _, rec := range records {
		if rec.Position > pos {
			sb.WriteString(source[pos:rec.Position])
			pos = rec.Position
		}
		switch rec.Kind {
		case KindAdd:
			sb.WriteString(rec.Content)
		case KindDelete:
			pos += len(rec.Original)
		case KindModify:
			sb.WriteString(rec.Content)
			pos += len(rec.Original)
		}
	}
	sb.WriteString(source[pos:])

	return sb.String()
}

// Segments replays the result's records and returns the source and target
// texts split into changed and unchanged portions, in document order.
// Adjacent segments with the same changed state are merged, and
// concatenating the texts of each list reproduces Text1 and Text2 exactly.
func (r *Result) Segments() (oldSegs, newSegs []Segment) {
	pos := 0
	for _, rec := range r.Records {
		if rec.Position > pos {
			context := r.Text1[pos:rec.Position]
			oldSegs = appendSegment(oldSegs, context, false)
			newSegs = appendSegment(newSegs, context, false)
			pos = rec.Position
		}
		switch rec.Kind {
		case KindAdd:
			newSegs = appendSegment(newSegs, rec.Content, true)
		case KindDelete:
			oldSegs = appendSegment(oldSegs, rec.Original, true)
			pos += len(rec.Original)
		case KindModify:
			oldSegs = appendSegment(oldSegs, rec.Original, true)
			newSegs = appendSegment(newSegs, rec.Content, true)
			pos += len(rec.Original)
		}
	}
	if pos < len(r.Text1) {
		context := r.Text1[pos:]
		oldSegs = appendSegment(oldSegs, context, false)
		newSegs = appendSegment(newSegs, context, false)
	}

	return oldSegs, newSegs
}

// appendSegment adds text to the segment list, merging into the previous
// segment when the changed state matches.
func appendSegment(segs []Segment, text string, changed bool) []Segment {
	if text == "" {
		return segs
	}
	if n := len(segs); n > 0 && segs[n-1].Changed == changed {
		segs[n-1].Text += text
		return segs
	}
	return append(segs, Segment{Text: text, Changed: changed})
}
