package textdiff

// Stats summarizes a diff result for reporting.
type Stats struct {
	Additions     int
	Deletions     int
	Modifications int
	Similarity    float64 // carried over from the Result
}

// Stats counts the result's records by kind. It is recomputed on demand and
// never stored independently of the result.
func (r *Result) Stats() Stats {
	stats := Stats{Similarity: r.Similarity}
	for _, rec := range r.Records {
		switch rec.Kind {
		case KindAdd:
			stats.Additions++
		case KindDelete:
			stats.Deletions++
		case KindModify:
			stats.Modifications++
		}
	}
	return stats
}
