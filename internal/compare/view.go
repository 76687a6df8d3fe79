package compare

import "github.com/netform-dev/netform/internal/ir"

// Path is a sequence of child indices from a root to a node.
type Path []int

// Equal reports whether two Paths have identical components.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Parent returns p with its last index removed; the empty Path's parent is
// itself (spec §4.4).
func (p Path) Parent() Path {
	if len(p) == 0 {
		return Path{}
	}
	parent := make(Path, len(p)-1)
	copy(parent, p[:len(p)-1])
	return parent
}

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	c := make(Path, len(p))
	copy(c, p)
	return c
}

// Less provides a deterministic total order over Paths, used wherever the
// diff engine must sort by path as a tie-break.
func (p Path) Less(other Path) bool {
	for i := 0; i < len(p) && i < len(other); i++ {
		if p[i] != other[i] {
			return p[i] < other[i]
		}
	}
	return len(p) < len(other)
}

// ComparisonLine is one flattened, normalized, identity-keyed line.
type ComparisonLine struct {
	NormalizedText string
	RawText        string
	Path           Path
	Span           ir.Span
	Trivia         ir.TriviaKind
	KeyHint        string
	HasKeyHint     bool
	ContentKey     uint64
	OccurrenceKey  uint64
}

// ComparisonView is the ordered sequence of ComparisonLines derived from a
// Document under a set of NormalizeOptions.
type ComparisonView struct {
	Lines []ComparisonLine
}
