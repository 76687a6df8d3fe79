// Package findings aggregates parse-time and diff-time diagnostics into the
// Diff-level findings list described in spec §4.4: parse uncertainty,
// ambiguous identity collisions, and fallback-alignment regions.
package findings

import (
	"fmt"
	"sort"

	"github.com/netform-dev/netform/internal/compare"
	"github.com/netform-dev/netform/internal/ir"
)

// Level is a Finding's severity. Only Warning is produced by this system;
// the core reports uncertainty, it never treats it as fatal (spec §7).
type Level string

const LevelWarning Level = "warning"

// Code identifies the kind of a Finding.
type Code string

const (
	CodeUnknownUnparsedConstruct Code = "unknown_unparsed_construct"
	CodeAmbiguousKeyMatch        Code = "ambiguous_key_match"
	CodeDiffUnreliableRegion     Code = "diff_unreliable_region"
)

// Finding is one diagnostic surfaced by a Diff.
type Finding struct {
	Level   Level
	Code    Code
	Message string
	Path    compare.Path
	Span    ir.Span
}

// Derive collects every Diff-level finding for a comparison of leftDoc
// against rightDoc, given their already-flattened views and the fallback
// context paths the diff engine recorded.
func Derive(
	leftDoc, rightDoc *ir.Document,
	leftView, rightView *compare.ComparisonView,
	fallbackContexts []compare.Path,
) []Finding {
	var out []Finding

	out = append(out, parseFindingsOf("left", leftDoc)...)
	out = append(out, parseFindingsOf("right", rightDoc)...)
	out = append(out, unknownBlockFindings("left", leftDoc)...)
	out = append(out, unknownBlockFindings("right", rightDoc)...)
	out = append(out, ambiguousContentKeyFindings(leftView, rightView)...)
	out = append(out, ambiguousKeyHintFindings(leftView, rightView)...)
	out = append(out, fallbackFindings(fallbackContexts)...)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Message != out[j].Message {
			return out[i].Message < out[j].Message
		}
		return out[i].Path.Less(out[j].Path)
	})

	return out
}

func parseFindingsOf(side string, doc *ir.Document) []Finding {
	var out []Finding
	for _, pf := range doc.Meta.Findings {
		out = append(out, Finding{
			Level:   LevelWarning,
			Code:    CodeUnknownUnparsedConstruct,
			Message: fmt.Sprintf("%s %s", side, pf.Message),
			Span:    pf.Span,
		})
	}
	return out
}

// unknownBlockFindings walks doc for Block nodes whose Kind == "unknown",
// tracking the same root-index-then-child-index Path scheme compare.Flatten
// uses so anchors stay comparable to ComparisonLine.Path.
func unknownBlockFindings(side string, doc *ir.Document) []Finding {
	var out []Finding

	var walk func(ids []ir.NodeID, path compare.Path)
	walk = func(ids []ir.NodeID, path compare.Path) {
		for i, id := range ids {
			node, ok := doc.Node(id)
			if !ok {
				continue
			}
			childPath := append(path.Clone(), i)
			if node.Kind != ir.KindBlock {
				continue
			}
			if node.Block.Kind == "unknown" {
				out = append(out, Finding{
					Level:   LevelWarning,
					Code:    CodeUnknownUnparsedConstruct,
					Message: fmt.Sprintf("%s unknown block construct at %s", side, node.Block.Header.Raw),
					Path:    childPath,
					Span:    node.Block.Header.Span,
				})
			}
			walk(node.Block.Children, childPath)
		}
	}
	walk(doc.Roots(), compare.Path{})

	return out
}

func ambiguousContentKeyFindings(left, right *compare.ComparisonView) []Finding {
	leftCounts, leftFirst := countByContentKey(left)
	rightCounts, rightFirst := countByContentKey(right)

	var out []Finding
	for key, lc := range leftCounts {
		rc := rightCounts[key]
		if lc < 2 || rc < 2 {
			continue
		}
		anchor, ok := leftFirst[key]
		if !ok {
			anchor, ok = rightFirst[key]
		}
		f := Finding{
			Level: LevelWarning,
			Code:  CodeAmbiguousKeyMatch,
			Message: fmt.Sprintf(
				"ambiguous key match for content key 0x%016x (left=%d, right=%d)", key, lc, rc,
			),
		}
		if ok {
			f.Path = anchor.Path
			f.Span = anchor.Span
		}
		out = append(out, f)
	}
	return out
}

func countByContentKey(view *compare.ComparisonView) (map[uint64]int, map[uint64]compare.ComparisonLine) {
	counts := make(map[uint64]int)
	first := make(map[uint64]compare.ComparisonLine)
	for _, l := range view.Lines {
		counts[l.ContentKey]++
		if _, ok := first[l.ContentKey]; !ok {
			first[l.ContentKey] = l
		}
	}
	return counts, first
}

func ambiguousKeyHintFindings(left, right *compare.ComparisonView) []Finding {
	leftCounts, leftFirst := countByKeyHint(left)
	rightCounts, rightFirst := countByKeyHint(right)

	var out []Finding
	for hint, lc := range leftCounts {
		rc := rightCounts[hint]
		if lc < 2 || rc < 2 {
			continue
		}
		anchor, ok := leftFirst[hint]
		if !ok {
			anchor, ok = rightFirst[hint]
		}
		f := Finding{
			Level:   LevelWarning,
			Code:    CodeAmbiguousKeyMatch,
			Message: fmt.Sprintf("ambiguous extracted key `%s`", hint),
		}
		if ok {
			f.Path = anchor.Path
			f.Span = anchor.Span
		}
		out = append(out, f)
	}
	return out
}

func countByKeyHint(view *compare.ComparisonView) (map[string]int, map[string]compare.ComparisonLine) {
	counts := make(map[string]int)
	first := make(map[string]compare.ComparisonLine)
	for _, l := range view.Lines {
		if !l.HasKeyHint || l.KeyHint == "" {
			continue
		}
		counts[l.KeyHint]++
		if _, ok := first[l.KeyHint]; !ok {
			first[l.KeyHint] = l
		}
	}
	return counts, first
}

func fallbackFindings(fallbackContexts []compare.Path) []Finding {
	out := make([]Finding, 0, len(fallbackContexts))
	for _, path := range fallbackContexts {
		out = append(out, Finding{
			Level:   LevelWarning,
			Code:    CodeDiffUnreliableRegion,
			Message: "diff alignment fell back to a flat line diff in this region",
			Path:    path,
		})
	}
	return out
}
