package diffengine

import "github.com/netform-dev/netform/internal/compare"

// Segment is a maximal run of ComparisonLines sharing a root Path index
// (spec §4.3: "Group the flattened view by first Path component").
type Segment struct {
	RootIndex int
	Lines     []compare.ComparisonLine
	IsBlock   bool
	Key       uint64
}

// segmentsFromView groups view.Lines by first Path component, in the order
// root indices first appear.
func segmentsFromView(view *compare.ComparisonView) []Segment {
	var segments []Segment
	index := make(map[int]int)

	for _, line := range view.Lines {
		root := 0
		if len(line.Path) > 0 {
			root = line.Path[0]
		}
		if pos, ok := index[root]; ok {
			segments[pos].Lines = append(segments[pos].Lines, line)
			if len(line.Path) > 1 {
				segments[pos].IsBlock = true
			}
			continue
		}
		seg := Segment{
			RootIndex: root,
			Lines:     []compare.ComparisonLine{line},
			IsBlock:   len(line.Path) > 1,
		}
		index[root] = len(segments)
		segments = append(segments, seg)
	}

	for i := range segments {
		if len(segments[i].Lines) > 0 {
			segments[i].Key = segments[i].Lines[0].ContentKey
		}
	}
	return segments
}

// headerOf returns a segment's header line (its first line at depth 1 in
// block segments, or its sole line in non-block segments) and whether one
// exists.
func headerOf(seg Segment) (compare.ComparisonLine, bool) {
	if len(seg.Lines) == 0 {
		return compare.ComparisonLine{}, false
	}
	return seg.Lines[0], true
}

// childrenOf returns a block segment's child lines, i.e. everything after
// its header.
func childrenOf(seg Segment) []compare.ComparisonLine {
	if len(seg.Lines) <= 1 {
		return nil
	}
	return seg.Lines[1:]
}
