package compare

import (
	"fmt"

	"github.com/netform-dev/netform/internal/ir"
)

// NodeKindForKey is the "kind" component of the content-key canonical
// string: Line, BlockHeader, or BlockFooter (spec §3).
type NodeKindForKey string

const (
	KeyKindLine        NodeKindForKey = "line"
	KeyKindBlockHeader NodeKindForKey = "block_header"
	KeyKindBlockFooter NodeKindForKey = "block_footer"
)

func triviaTag(t ir.TriviaKind) string {
	switch t {
	case ir.TriviaBlank:
		return "blank"
	case ir.TriviaComment:
		return "comment"
	case ir.TriviaContent:
		return "content"
	default:
		return "unknown"
	}
}

// contentKey computes the 64-bit content key for a line: a hash of
// "p=<parent_signature>|k=<kind>|t=<trivia_tag>|n=<key_material>".
func contentKey(parentSignature uint64, kind NodeKindForKey, trivia ir.TriviaKind, keyMaterial string) uint64 {
	canonical := fmt.Sprintf("p=%d|k=%s|t=%s|n=%s", parentSignature, kind, triviaTag(trivia), keyMaterial)
	return hashString(canonical)
}

// occurrenceKey computes the 64-bit occurrence key for the ordinal-th
// (1-based) line sharing a content key within one view.
func occurrenceKey(contentKey uint64, ordinal int) uint64 {
	canonical := fmt.Sprintf("c=%d|o=%d", contentKey, ordinal)
	return hashString(canonical)
}

// keyMaterial picks the key material for a line per spec §3: the dialect
// key hint (prefixed "stanza:") for a Content BlockHeader that has one,
// otherwise the normalized text.
func keyMaterial(kind NodeKindForKey, trivia ir.TriviaKind, hint string, hasHint bool, normalizedText string) string {
	if kind == KeyKindBlockHeader && trivia == ir.TriviaContent && hasHint {
		return "stanza:" + hint
	}
	return normalizedText
}

// ordinalTracker assigns 1-based occurrence ordinals per
// (parent_signature, kind, content_key) tuple within one view, in document
// order, as flatten walks the tree.
type ordinalTracker struct {
	seen map[ordinalBucketKey]int
}

type ordinalBucketKey struct {
	parentSignature uint64
	kind            NodeKindForKey
	contentKey      uint64
}

func newOrdinalTracker() *ordinalTracker {
	return &ordinalTracker{seen: make(map[ordinalBucketKey]int)}
}

func (t *ordinalTracker) next(parentSignature uint64, kind NodeKindForKey, contentKey uint64) int {
	key := ordinalBucketKey{parentSignature, kind, contentKey}
	t.seen[key]++
	return t.seen[key]
}
