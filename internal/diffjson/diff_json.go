// Package diffjson marshals a diff and a plan to the exact JSON wire
// shapes specified in spec §6, independent of the in-memory edit-script and
// plan representations internal/diffengine and internal/plan use.
package diffjson

import (
	"encoding/json"
	"fmt"

	"github.com/netform-dev/netform/internal/compare"
	"github.com/netform-dev/netform/internal/diffengine"
	"github.com/netform-dev/netform/internal/findings"
	"github.com/netform-dev/netform/internal/ir"
)

// hexKey renders a 64-bit key as the fixed 16-hex-digit lowercase form used
// throughout the Markdown report, reused here so a Diff JSON document
// doesn't lose precision when a consumer decodes it with float64 numbers.
func hexKey(k uint64) string {
	return fmt.Sprintf("0x%016x", k)
}

type spanDoc struct {
	Line  int `json:"line"  yaml:"line"`
	Start int `json:"start" yaml:"start"`
	End   int `json:"end"   yaml:"end"`
}

func spanOf(s ir.Span) spanDoc {
	return spanDoc{Line: s.Line, Start: s.Start, End: s.End}
}

type anchorDoc struct {
	Path []int   `json:"path" yaml:"path"`
	Span spanDoc `json:"span" yaml:"span"`
}

func anchorOfDoc(a *diffengine.EditAnchor) *anchorDoc {
	if a == nil {
		return nil
	}
	return &anchorDoc{Path: []int(a.Path), Span: spanOf(a.Span)}
}

type diffLineDoc struct {
	ContentKey    string  `json:"content_key"    yaml:"content_key"`
	OccurrenceKey string  `json:"occurrence_key" yaml:"occurrence_key"`
	Text          string  `json:"text"           yaml:"text"`
	Path          []int   `json:"path"           yaml:"path"`
	Span          spanDoc `json:"span"           yaml:"span"`
}

func diffLineOf(l diffengine.DiffLine) diffLineDoc {
	return diffLineDoc{
		ContentKey:    hexKey(l.ContentKey),
		OccurrenceKey: hexKey(l.OccurrenceKey),
		Text:          l.Text,
		Path:          []int(l.Path),
		Span:          spanOf(l.Span),
	}
}

func diffLinesOf(ls []diffengine.DiffLine) []diffLineDoc {
	out := make([]diffLineDoc, len(ls))
	for i, l := range ls {
		out[i] = diffLineOf(l)
	}
	return out
}

type editDoc struct {
	Type string `json:"type" yaml:"type"`

	AtKey    *string `json:"at_key,omitempty"     yaml:"at_key,omitempty"`
	OldAtKey *string `json:"old_at_key,omitempty" yaml:"old_at_key,omitempty"`
	NewAtKey *string `json:"new_at_key,omitempty" yaml:"new_at_key,omitempty"`

	LeftAnchor  *anchorDoc `json:"left_anchor,omitempty"  yaml:"left_anchor,omitempty"`
	RightAnchor *anchorDoc `json:"right_anchor,omitempty" yaml:"right_anchor,omitempty"`

	Lines    []diffLineDoc `json:"lines,omitempty"     yaml:"lines,omitempty"`
	OldLines []diffLineDoc `json:"old_lines,omitempty" yaml:"old_lines,omitempty"`
	NewLines []diffLineDoc `json:"new_lines,omitempty" yaml:"new_lines,omitempty"`
}

func hexPtr(k *uint64) *string {
	if k == nil {
		return nil
	}
	s := hexKey(*k)
	return &s
}

func editDocOf(e diffengine.Edit) editDoc {
	d := editDoc{
		Type:        e.Kind.String(),
		AtKey:       hexPtr(e.AtKey),
		OldAtKey:    hexPtr(e.OldAtKey),
		NewAtKey:    hexPtr(e.NewAtKey),
		LeftAnchor:  anchorOfDoc(e.LeftAnchor),
		RightAnchor: anchorOfDoc(e.RightAnchor),
	}
	if len(e.Lines) > 0 {
		d.Lines = diffLinesOf(e.Lines)
	}
	if len(e.OldLines) > 0 {
		d.OldLines = diffLinesOf(e.OldLines)
	}
	if len(e.NewLines) > 0 {
		d.NewLines = diffLinesOf(e.NewLines)
	}
	return d
}

type statsDoc struct {
	InsertCount      int `json:"insert_count"       yaml:"insert_count"`
	DeleteCount      int `json:"delete_count"       yaml:"delete_count"`
	ReplaceCount     int `json:"replace_count"      yaml:"replace_count"`
	InsertedLines    int `json:"inserted_lines"     yaml:"inserted_lines"`
	DeletedLines     int `json:"deleted_lines"      yaml:"deleted_lines"`
	ReplacedOldLines int `json:"replaced_old_lines" yaml:"replaced_old_lines"`
	ReplacedNewLines int `json:"replaced_new_lines" yaml:"replaced_new_lines"`
}

func statsDocOf(s diffengine.Stats) statsDoc {
	return statsDoc{
		InsertCount:      s.InsertCount,
		DeleteCount:      s.DeleteCount,
		ReplaceCount:     s.ReplaceCount,
		InsertedLines:    s.InsertedLines,
		DeletedLines:     s.DeletedLines,
		ReplacedOldLines: s.ReplacedOldLines,
		ReplacedNewLines: s.ReplacedNewLines,
	}
}

type findingDoc struct {
	Level   string  `json:"level"           yaml:"level"`
	Code    string  `json:"code"            yaml:"code"`
	Message string  `json:"message"         yaml:"message"`
	Path    []int   `json:"path,omitempty"  yaml:"path,omitempty"`
	Span    spanDoc `json:"span"            yaml:"span"`
}

func findingDocOf(f findings.Finding) findingDoc {
	return findingDoc{
		Level:   string(f.Level),
		Code:    string(f.Code),
		Message: f.Message,
		Path:    []int(f.Path),
		Span:    spanOf(f.Span),
	}
}

type policyOverrideDoc struct {
	PathPrefix []int  `json:"path_prefix" yaml:"path_prefix"`
	Policy     string `json:"policy"      yaml:"policy"`
}

type orderPolicyDoc struct {
	Default   string              `json:"default"             yaml:"default"`
	Overrides []policyOverrideDoc `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

func orderPolicyDocOf(cfg compare.OrderPolicyConfig) orderPolicyDoc {
	d := orderPolicyDoc{Default: string(cfg.Default)}
	for _, ov := range cfg.Overrides {
		d.Overrides = append(d.Overrides, policyOverrideDoc{
			PathPrefix: []int(ov.PathPrefix),
			Policy:     string(ov.Policy),
		})
	}
	return d
}

// Diff is the Diff JSON document (spec §6): normalization_steps,
// order_policy, has_changes, edits, stats, findings.
type Diff struct {
	NormalizationSteps []string       `json:"normalization_steps" yaml:"normalization_steps"`
	OrderPolicy        orderPolicyDoc `json:"order_policy"        yaml:"order_policy"`
	HasChanges         bool           `json:"has_changes"         yaml:"has_changes"`
	Edits              []editDoc      `json:"edits"               yaml:"edits"`
	Stats              statsDoc       `json:"stats"               yaml:"stats"`
	Findings           []findingDoc   `json:"findings"            yaml:"findings"`
}

// BuildDiff assembles a Diff JSON document from the pieces the pipeline
// produced: the normalization pipeline and policy config used to flatten
// both sides, the edit script, its aggregate stats, and derived findings.
func BuildDiff(
	steps []compare.NormalizationStep,
	policy compare.OrderPolicyConfig,
	edits []diffengine.Edit,
	stats diffengine.Stats,
	finds []findings.Finding,
) Diff {
	stepNames := make([]string, len(steps))
	for i, s := range steps {
		stepNames[i] = string(s)
	}

	editDocs := make([]editDoc, len(edits))
	for i, e := range edits {
		editDocs[i] = editDocOf(e)
	}

	findingDocs := make([]findingDoc, len(finds))
	for i, f := range finds {
		findingDocs[i] = findingDocOf(f)
	}

	return Diff{
		NormalizationSteps: stepNames,
		OrderPolicy:        orderPolicyDocOf(policy),
		HasChanges:         len(edits) > 0,
		Edits:              editDocs,
		Stats:              statsDocOf(stats),
		Findings:           findingDocs,
	}
}

// Marshal renders d as indented JSON, matching the CLI's --json output.
func Marshal(d Diff) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}
