package levenshtein

import (
	"math"
	"unicode/utf8"

	textdiff "github.com/honlnk/text-diff-viewer"
)

// toRecords converts an optimized operation list into public diff records.
// Unit indices become byte offsets into the normalized source text via a
// prefix sum over unit lengths. Runs of deletes at consecutive unit
// positions collapse into a single record covering the concatenated text,
// so deleting a whole text yields one record rather than one per unit.
func toRecords(ops []op, units1 []string) []textdiff.Record {
	if len(ops) == 0 {
		return nil
	}

	offsets := make([]int, len(units1)+1)
	for i, u := range units1 {
		offsets[i+1] = offsets[i] + len(u)
	}

	records := make([]textdiff.Record, 0, len(ops))
	for i := 0; i < len(ops); i++ {
		cur := ops[i]
		switch cur.kind {
		case opInsert:
			records = append(records, textdiff.Record{
				Position: offsets[cur.pos],
				Kind:     textdiff.KindAdd,
				Content:  cur.new,
			})
		case opDelete:
			pos := cur.pos
			removed := cur.old
			for i+1 < len(ops) && ops[i+1].kind == opDelete && ops[i+1].pos == ops[i].pos+1 {
				i++
				removed += ops[i].old
			}
			records = append(records, textdiff.Record{
				Position: offsets[pos],
				Kind:     textdiff.KindDelete,
				Content:  removed,
				Original: removed,
			})
		case opReplace:
			records = append(records, textdiff.Record{
				Position: offsets[cur.pos],
				Kind:     textdiff.KindModify,
				Content:  cur.new,
				Original: cur.old,
			})
		}
	}
	return records
}

// similarity converts an edit distance into a 0-100 score relative to the
// longer text's length in code points, rounded to two decimal places.
// Two empty texts are defined as 100% similar.
func similarity(text1, text2 string, distance int) float64 {
	maxLen := utf8.RuneCountInString(text1)
	if n := utf8.RuneCountInString(text2); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 100
	}

	score := (1 - float64(distance)/float64(maxLen)) * 100
	if score < 0 {
		score = 0
	}
	return math.Round(score*100) / 100
}
