package diffengine

import (
	"github.com/netform-dev/netform/internal/compare"
	"github.com/netform-dev/netform/internal/ir"
)

// DiffLine is one line carried by an Edit (spec §3).
type DiffLine struct {
	ContentKey    uint64
	OccurrenceKey uint64
	Text          string
	Path          compare.Path
	Span          ir.Span
}

// EditAnchor locates an Edit in the original tree for plan derivation.
type EditAnchor struct {
	Path compare.Path
	Span ir.Span
}

// EditKind discriminates the Edit tagged variant.
type EditKind int

const (
	EditInsert EditKind = iota
	EditDelete
	EditReplace
)

func (k EditKind) String() string {
	switch k {
	case EditInsert:
		return "Insert"
	case EditDelete:
		return "Delete"
	case EditReplace:
		return "Replace"
	default:
		return "Unknown"
	}
}

// Edit is Insert{at_key?, right_anchor?, lines[]} / Delete{at_key?,
// left_anchor?, lines[]} / Replace{old_at_key?, new_at_key?, left_anchor?,
// right_anchor?, old_lines[], new_lines[]} (spec §3), folded into one struct
// with the fields relevant to Kind populated.
type Edit struct {
	Kind EditKind

	AtKey    *uint64
	OldAtKey *uint64
	NewAtKey *uint64

	LeftAnchor  *EditAnchor
	RightAnchor *EditAnchor

	Lines    []DiffLine
	OldLines []DiffLine
	NewLines []DiffLine
}

func toDiffLine(l compare.ComparisonLine) DiffLine {
	return DiffLine{
		ContentKey:    l.ContentKey,
		OccurrenceKey: l.OccurrenceKey,
		Text:          l.RawText,
		Path:          l.Path,
		Span:          l.Span,
	}
}

func anchorOf(l compare.ComparisonLine) *EditAnchor {
	return &EditAnchor{Path: l.Path, Span: l.Span}
}
