package levenshtein

// optimize merges colliding operations in a position-ordered operation list
// so no anchor is described by overlapping edits. It is a pure function of
// its input and idempotent: optimizing an already-optimized list is a no-op.
//
// Rules, applied in one left-to-right scan:
//   - consecutive inserts at the same insertion point merge into one insert
//     with concatenated content;
//   - a replace immediately following an insert run at the same anchor is
//     absorbed into it: the combined operation becomes a replace whose new
//     content is the inserted text followed by the replacement text, and
//     whose old content is the overwritten unit (kept so record replay stays
//     exact);
//   - any other operation at a position already covered by a merged insert
//     is dropped.
func optimize(ops []op) []op {
	if len(ops) == 0 {
		return ops
	}

	out := make([]op, 0, len(ops))
	for i := 0; i < len(ops); i++ {
		cur := ops[i]

		if cur.kind == opInsert {
			for i+1 < len(ops) && ops[i+1].kind == opInsert && ops[i+1].pos == cur.pos {
				i++
				cur.new += ops[i].new
			}
			if i+1 < len(ops) && ops[i+1].kind == opReplace && ops[i+1].pos == cur.pos {
				i++
				cur = op{kind: opReplace, pos: cur.pos, old: ops[i].old, new: cur.new + ops[i].new}
			}
			out = append(out, cur)
			continue
		}

		if n := len(out); n > 0 && out[n-1].kind == opInsert && out[n-1].pos == cur.pos {
			continue
		}
		out = append(out, cur)
	}
	return out
}
