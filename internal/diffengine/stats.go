package diffengine

// Stats aggregates edit counts and line totals (spec §4.3).
type Stats struct {
	InsertCount int
	DeleteCount int
	ReplaceCount int

	InsertedLines     int
	DeletedLines      int
	ReplacedOldLines  int
	ReplacedNewLines  int
}

// AggregateStats computes Stats over a finished edit script.
func AggregateStats(edits []Edit) Stats {
	var s Stats
	for _, e := range edits {
		switch e.Kind {
		case EditInsert:
			s.InsertCount++
			s.InsertedLines += len(e.Lines)
		case EditDelete:
			s.DeleteCount++
			s.DeletedLines += len(e.Lines)
		case EditReplace:
			s.ReplaceCount++
			s.ReplacedOldLines += len(e.OldLines)
			s.ReplacedNewLines += len(e.NewLines)
		}
	}
	return s
}
