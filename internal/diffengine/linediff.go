package diffengine

import (
	"sort"

	"github.com/netform-dev/netform/internal/compare"
)

// LineDiff runs the line-level diff tier for one OrderPolicy over oldLines
// (left) and newLines (right), producing at most the edits described in
// spec §4.3.
func LineDiff(policy OrderPolicy, oldLines, newLines []compare.ComparisonLine) []Edit {
	switch policy {
	case PolicyUnordered:
		return bucketedDiff(oldLines, newLines, func(l compare.ComparisonLine) uint64 {
			return compare.HashString(l.NormalizedText)
		})
	case PolicyKeyedStable:
		return bucketedDiff(oldLines, newLines, func(l compare.ComparisonLine) uint64 {
			return l.ContentKey
		})
	default:
		return orderedDiff(oldLines, newLines)
	}
}

func orderedDiff(oldLines, newLines []compare.ComparisonLine) []Edit {
	ops := Myers(len(oldLines), len(newLines), func(ai, bi int) bool {
		return oldLines[ai].ContentKey == newLines[bi].ContentKey
	})

	var edits []Edit
	var deletes, inserts []compare.ComparisonLine

	flush := func() {
		if e := finalizeRun(deletes, inserts); e != nil {
			edits = append(edits, *e)
		}
		deletes, inserts = nil, nil
	}

	for _, op := range ops {
		switch op.Type {
		case OpEqual:
			flush()
		case OpDelete:
			deletes = append(deletes, oldLines[op.AIndex])
		case OpInsert:
			inserts = append(inserts, newLines[op.BIndex])
		}
	}
	flush()
	return edits
}

func finalizeRun(deletes, inserts []compare.ComparisonLine) *Edit {
	switch {
	case len(deletes) == 0 && len(inserts) == 0:
		return nil
	case len(deletes) > 0 && len(inserts) > 0:
		oldAt := deletes[0].OccurrenceKey
		newAt := inserts[0].OccurrenceKey
		return &Edit{
			Kind:        EditReplace,
			OldAtKey:    &oldAt,
			NewAtKey:    &newAt,
			LeftAnchor:  anchorOf(deletes[0]),
			RightAnchor: anchorOf(inserts[0]),
			OldLines:    toDiffLines(deletes),
			NewLines:    toDiffLines(inserts),
		}
	case len(deletes) > 0:
		at := deletes[0].OccurrenceKey
		return &Edit{
			Kind:       EditDelete,
			AtKey:      &at,
			LeftAnchor: anchorOf(deletes[0]),
			Lines:      toDiffLines(deletes),
		}
	default:
		at := inserts[0].OccurrenceKey
		return &Edit{
			Kind:        EditInsert,
			AtKey:       &at,
			RightAnchor: anchorOf(inserts[0]),
			Lines:       toDiffLines(inserts),
		}
	}
}

func toDiffLines(lines []compare.ComparisonLine) []DiffLine {
	out := make([]DiffLine, len(lines))
	for i, l := range lines {
		out[i] = toDiffLine(l)
	}
	return out
}

// bucketedDiff implements Unordered and KeyedStable, which differ only in
// the key function used to bucket lines before pairing.
func bucketedDiff(oldLines, newLines []compare.ComparisonLine, bucketKey func(compare.ComparisonLine) uint64) []Edit {
	oldBuckets := make(map[uint64][]compare.ComparisonLine)
	newBuckets := make(map[uint64][]compare.ComparisonLine)
	keysSeen := make(map[uint64]struct{})

	for _, l := range oldLines {
		k := bucketKey(l)
		oldBuckets[k] = append(oldBuckets[k], l)
		keysSeen[k] = struct{}{}
	}
	for _, l := range newLines {
		k := bucketKey(l)
		newBuckets[k] = append(newBuckets[k], l)
		keysSeen[k] = struct{}{}
	}

	keys := make([]uint64, 0, len(keysSeen))
	for k := range keysSeen {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var surplusDeletes, surplusInserts []compare.ComparisonLine

	for _, k := range keys {
		left := sortedByOccurrence(oldBuckets[k])
		right := sortedByOccurrence(newBuckets[k])
		paired := len(left)
		if len(right) < paired {
			paired = len(right)
		}
		surplusDeletes = append(surplusDeletes, left[paired:]...)
		surplusInserts = append(surplusInserts, right[paired:]...)
	}

	sortForOutput(surplusDeletes)
	sortForOutput(surplusInserts)

	if e := finalizeRun(surplusDeletes, surplusInserts); e != nil {
		return []Edit{*e}
	}
	return nil
}

func sortedByOccurrence(lines []compare.ComparisonLine) []compare.ComparisonLine {
	out := make([]compare.ComparisonLine, len(lines))
	copy(out, lines)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].OccurrenceKey != out[j].OccurrenceKey {
			return out[i].OccurrenceKey < out[j].OccurrenceKey
		}
		return out[i].Path.Less(out[j].Path)
	})
	return out
}

// sortForOutput orders surplus lines by (content_key, occurrence_key, path)
// as spec §4.3 requires before finalizing Unordered/KeyedStable edits.
func sortForOutput(lines []compare.ComparisonLine) {
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].ContentKey != lines[j].ContentKey {
			return lines[i].ContentKey < lines[j].ContentKey
		}
		if lines[i].OccurrenceKey != lines[j].OccurrenceKey {
			return lines[i].OccurrenceKey < lines[j].OccurrenceKey
		}
		return lines[i].Path.Less(lines[j].Path)
	})
}
