package compare

import "github.com/netform-dev/netform/internal/ir"

// KeyHinter is the subset of dialect.Dialect that flatten needs to resolve
// stable key hints for Content block headers.
type KeyHinter interface {
	KeyHint(raw string, parts ir.Parts, trivia ir.TriviaKind) (hint string, ok bool)
}

// Flatten walks doc depth-first (root index then child index), applying
// opts' normalization pipeline to each visited line and, for lines that
// survive, allocating identity keys, producing a ComparisonView (spec
// §4.2).
func Flatten(doc *ir.Document, dia KeyHinter, opts NormalizeOptions) *ComparisonView {
	view := &ComparisonView{}
	ord := newOrdinalTracker()

	var walkIDs func(ids []ir.NodeID, path Path, parentSignature uint64)
	walkIDs = func(ids []ir.NodeID, path Path, parentSignature uint64) {
		for i, id := range ids {
			node, ok := doc.Node(id)
			if !ok {
				continue
			}
			childPath := append(path.Clone(), i)

			switch node.Kind {
			case ir.KindLine:
				emitLine(view, ord, dia, opts, *node.Line, childPath, KeyKindLine, parentSignature)
			case ir.KindBlock:
				headerKey := emitLine(view, ord, dia, opts, node.Block.Header, childPath, KeyKindBlockHeader, parentSignature)
				walkIDs(node.Block.Children, childPath, headerKey)
				if node.Block.Footer != nil {
					// The footer sits one level deeper than the header, past the
					// last child index, so it never collides with the header's
					// own Path; its parent signature is the header's content
					// key, same as any child.
					footerPath := append(childPath.Clone(), len(node.Block.Children))
					emitLine(view, ord, dia, opts, *node.Block.Footer, footerPath, KeyKindBlockFooter, headerKey)
				}
			}
		}
	}

	walkIDs(doc.Roots(), Path{}, 0)
	return view
}

// emitLine normalizes one line and, if it survives, appends a
// ComparisonLine to view. It returns the line's content key regardless of
// survival, used by callers as the parent signature for children even when
// the header itself was dropped by normalization (a header that survives
// normalization is the common case; if a header is dropped its content key
// is still well-defined and deterministic, keeping child keying stable).
func emitLine(
	view *ComparisonView,
	ord *ordinalTracker,
	dia KeyHinter,
	opts NormalizeOptions,
	line ir.Line,
	path Path,
	kind NodeKindForKey,
	parentSignature uint64,
) uint64 {
	normalized, ok := Normalize(opts.Steps, line.Raw, line.Trivia)

	hint := ""
	hasHint := false
	if kind == KeyKindBlockHeader && line.Trivia == ir.TriviaContent && line.Parts != nil {
		hint, hasHint = dia.KeyHint(line.Raw, *line.Parts, line.Trivia)
	}

	material := keyMaterial(kind, line.Trivia, hint, hasHint, normalized)
	ck := contentKey(parentSignature, kind, line.Trivia, material)

	if !ok {
		return ck
	}

	ordinal := ord.next(parentSignature, kind, ck)
	ok64 := occurrenceKey(ck, ordinal)

	view.Lines = append(view.Lines, ComparisonLine{
		NormalizedText: normalized,
		RawText:        line.Raw,
		Path:           path.Clone(),
		Span:           line.Span,
		Trivia:         line.Trivia,
		KeyHint:        hint,
		HasKeyHint:     hasHint,
		ContentKey:     ck,
		OccurrenceKey:  ok64,
	})
	return ck
}
