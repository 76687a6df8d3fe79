package diffengine

import "github.com/netform-dev/netform/internal/compare"

// DiffDocuments runs the two-tier SES alignment of spec §4.3 over two
// already-flattened ComparisonViews, returning the combined edit script and
// the list of Paths where fallback (non-segment-aligned) line diffing was
// used.
func DiffDocuments(left, right *compare.ComparisonView, policy compare.OrderPolicyConfig) ([]Edit, []compare.Path) {
	segsA := segmentsFromView(left)
	segsB := segmentsFromView(right)

	keysA := make([]uint64, len(segsA))
	for i, s := range segsA {
		keysA[i] = s.Key
	}
	keysB := make([]uint64, len(segsB))
	for i, s := range segsB {
		keysB[i] = s.Key
	}

	ops := Myers(len(segsA), len(segsB), func(ai, bi int) bool {
		return keysA[ai] == keysB[bi]
	})

	var edits []Edit
	var fallbackContexts []compare.Path

	var runDeleted, runInserted []compare.ComparisonLine

	flushRun := func() {
		if len(runDeleted) == 0 && len(runInserted) == 0 {
			return
		}
		anchorPath := compare.Path{}
		if len(runDeleted) > 0 {
			anchorPath = runDeleted[0].Path
		} else if len(runInserted) > 0 {
			anchorPath = runInserted[0].Path
		}
		effective := policy.Resolve(anchorPath)
		edits = append(edits, LineDiff(effective, runDeleted, runInserted)...)
		fallbackContexts = append(fallbackContexts, anchorPath)
		runDeleted, runInserted = nil, nil
	}

	for _, op := range ops {
		switch op.Type {
		case OpEqual:
			flushRun()

			segA := segsA[op.AIndex]
			segB := segsB[op.BIndex]
			if segA.IsBlock && segB.IsBlock {
				header, ok := headerOf(segA)
				headerPath := compare.Path{}
				if ok {
					headerPath = header.Path
				}
				effective := policy.Resolve(headerPath)
				edits = append(edits, LineDiff(effective, childrenOf(segA), childrenOf(segB))...)
			}
			// Equal with either side not block-like: segments considered
			// equal, no edits.

		case OpDelete:
			runDeleted = append(runDeleted, segsA[op.AIndex].Lines...)
		case OpInsert:
			runInserted = append(runInserted, segsB[op.BIndex].Lines...)
		}
	}
	flushRun()

	return edits, fallbackContexts
}
