// Package plan derives a transport-neutral action plan from a diff edit
// script (spec §4.4), independent of whatever remediation mechanism
// eventually consumes it.
package plan

import (
	"github.com/netform-dev/netform/internal/compare"
	"github.com/netform-dev/netform/internal/ir"
)

// ActionType discriminates the Action tagged variant.
type ActionType string

const (
	ActionReplaceBlock         ActionType = "replace_block"
	ActionApplyLineEditsUnder  ActionType = "apply_line_edits_under_context"
)

// LineEditKind discriminates one line-level edit inside an
// ApplyLineEditsUnderContext action.
type LineEditKind string

const (
	LineEditInsert  LineEditKind = "insert"
	LineEditDelete  LineEditKind = "delete"
	LineEditReplace LineEditKind = "replace"
)

// LineEdit is one line-level change applied under an action's context path.
type LineEdit struct {
	Kind    LineEditKind
	OldText string
	NewText string
}

// Action is ReplaceBlock{target_path, target_span, intended_lines[]} or
// ApplyLineEditsUnderContext{context_path, line_edits[]} (spec §3).
type Action struct {
	Type ActionType

	TargetPath    compare.Path
	TargetSpan    ir.Span
	IntendedLines []string

	ContextPath compare.Path
	LineEdits   []LineEdit
}

// FindingCode identifies the kind of a PlanFinding.
type FindingCode string

const CodeMissingAnchor FindingCode = "missing_anchor"

// Finding is a plan-derivation diagnostic: an Edit that could not be
// translated into an action because it lacked a required anchor.
type Finding struct {
	Code    FindingCode
	Message string
}

// Plan is the top-level output of derivation: a version tag, the ordered
// action list, and any derivation findings.
type Plan struct {
	Version  string
	Actions  []Action
	Findings []Finding
}
