package diffjson

import (
	"encoding/json"

	"github.com/netform-dev/netform/internal/plan"
)

type lineEditDoc struct {
	Kind    string `json:"kind"`
	OldText string `json:"old_text,omitempty"`
	NewText string `json:"new_text,omitempty"`
}

func lineEditDocOf(le plan.LineEdit) lineEditDoc {
	return lineEditDoc{
		Kind:    string(le.Kind),
		OldText: le.OldText,
		NewText: le.NewText,
	}
}

type actionDoc struct {
	Type string `json:"type"`

	TargetPath    []int    `json:"target_path,omitempty"`
	TargetSpan    *spanDoc `json:"target_span,omitempty"`
	IntendedLines []string `json:"intended_lines,omitempty"`

	ContextPath []int         `json:"context_path,omitempty"`
	LineEdits   []lineEditDoc `json:"line_edits,omitempty"`
}

func actionDocOf(a plan.Action) actionDoc {
	d := actionDoc{Type: string(a.Type)}
	switch a.Type {
	case plan.ActionReplaceBlock:
		d.TargetPath = []int(a.TargetPath)
		span := spanOf(a.TargetSpan)
		d.TargetSpan = &span
		d.IntendedLines = a.IntendedLines
	case plan.ActionApplyLineEditsUnder:
		d.ContextPath = []int(a.ContextPath)
		d.LineEdits = make([]lineEditDoc, len(a.LineEdits))
		for i, le := range a.LineEdits {
			d.LineEdits[i] = lineEditDocOf(le)
		}
	}
	return d
}

type planFindingDoc struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Plan is the Plan JSON document (spec §6): version, actions, findings.
type Plan struct {
	Version  string           `json:"version"`
	Actions  []actionDoc      `json:"actions"`
	Findings []planFindingDoc `json:"findings"`
}

// BuildPlan converts a plan.Plan into its JSON document form.
func BuildPlan(p plan.Plan) Plan {
	actions := make([]actionDoc, len(p.Actions))
	for i, a := range p.Actions {
		actions[i] = actionDocOf(a)
	}
	findingDocs := make([]planFindingDoc, len(p.Findings))
	for i, f := range p.Findings {
		findingDocs[i] = planFindingDoc{Code: string(f.Code), Message: f.Message}
	}
	return Plan{Version: p.Version, Actions: actions, Findings: findingDocs}
}

// MarshalPlan renders p as indented JSON, matching the CLI's --plan-json
// output.
func MarshalPlan(p Plan) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}
