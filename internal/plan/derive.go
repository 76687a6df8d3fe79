package plan

import (
	"fmt"

	"github.com/netform-dev/netform/internal/compare"
	"github.com/netform-dev/netform/internal/diffengine"
)

// Derive translates an edit script into a Plan following spec §4.4: each
// Edit becomes a ReplaceBlock, contributes line_edits to a grouped
// ApplyLineEditsUnderContext action, or — lacking its required anchor —
// contributes a missing_anchor Finding and no action.
func Derive(edits []diffengine.Edit) Plan {
	p := Plan{Version: "v1"}

	var pending []LineEdit
	var pendingContext compare.Path
	havePending := false

	flush := func() {
		if havePending && len(pending) > 0 {
			p.Actions = append(p.Actions, Action{
				Type:        ActionApplyLineEditsUnder,
				ContextPath: pendingContext,
				LineEdits:   pending,
			})
		}
		pending = nil
		havePending = false
	}

	appendLineEdit := func(ctx compare.Path, le LineEdit) {
		if havePending && pendingContext.Equal(ctx) {
			pending = append(pending, le)
			return
		}
		flush()
		pendingContext = ctx
		pending = []LineEdit{le}
		havePending = true
	}

	missingAnchor := func(e diffengine.Edit) {
		flush()
		p.Findings = append(p.Findings, Finding{
			Code:    CodeMissingAnchor,
			Message: fmt.Sprintf("%s edit has no anchor to derive a plan action from", e.Kind),
		})
	}

	for _, e := range edits {
		switch e.Kind {
		case diffengine.EditReplace:
			if e.LeftAnchor == nil {
				missingAnchor(e)
				continue
			}
			if len(e.OldLines) > 1 || len(e.NewLines) > 1 {
				flush()
				lines := make([]string, len(e.NewLines))
				for i, l := range e.NewLines {
					lines[i] = l.Text
				}
				p.Actions = append(p.Actions, Action{
					Type:          ActionReplaceBlock,
					TargetPath:    e.LeftAnchor.Path,
					TargetSpan:    e.LeftAnchor.Span,
					IntendedLines: lines,
				})
				continue
			}
			ctx := e.LeftAnchor.Path.Parent()
			appendLineEdit(ctx, LineEdit{
				Kind:    LineEditReplace,
				OldText: e.OldLines[0].Text,
				NewText: e.NewLines[0].Text,
			})

		case diffengine.EditInsert:
			if e.RightAnchor == nil {
				missingAnchor(e)
				continue
			}
			ctx := e.RightAnchor.Path.Parent()
			for _, l := range e.Lines {
				appendLineEdit(ctx, LineEdit{Kind: LineEditInsert, NewText: l.Text})
			}

		case diffengine.EditDelete:
			if e.LeftAnchor == nil {
				missingAnchor(e)
				continue
			}
			ctx := e.LeftAnchor.Path.Parent()
			for _, l := range e.Lines {
				appendLineEdit(ctx, LineEdit{Kind: LineEditDelete, OldText: l.Text})
			}
		}
	}

	flush()
	return p
}
