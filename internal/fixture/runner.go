package fixture

import (
	"fmt"

	"github.com/netform-dev/netform/internal/compare"
	"github.com/netform-dev/netform/internal/dialect"
	"github.com/netform-dev/netform/internal/diffengine"
	"github.com/netform-dev/netform/internal/findings"
	"github.com/netform-dev/netform/internal/ir"
)

// Mismatch describes the first expectation a fixture failed to meet.
type Mismatch struct {
	Fixture string
	Field   string
	Want    any
	Got     any
}

func (m Mismatch) Error() string {
	return fmt.Sprintf("fixture %q: %s mismatch: want %v, got %v", m.Fixture, m.Field, m.Want, m.Got)
}

// Run parses both sides of f with its stated dialect, diffs them, and
// checks has_changes, the ordered edit-kind sequence, and the ordered
// finding-code sequence against f.Expected. It returns the first mismatch,
// or nil if every check passes (spec §6: "fails at the first mismatch").
func Run(f Fixture) error {
	dia := dialect.ByName(f.dialectName())

	leftDoc := ir.Parse(f.Intended, dia, f.Name+":intended")
	rightDoc := ir.Parse(f.Actual, dia, f.Name+":actual")

	opts := compare.NormalizeOptions{Steps: f.NormalizationSteps, OrderPolicy: f.OrderPolicy}
	leftView := compare.Flatten(leftDoc, dia, opts)
	rightView := compare.Flatten(rightDoc, dia, opts)

	edits, fallbackContexts := diffengine.DiffDocuments(leftView, rightView, f.OrderPolicy)
	finds := findings.Derive(leftDoc, rightDoc, leftView, rightView, fallbackContexts)

	hasChanges := len(edits) > 0
	if hasChanges != f.Expected.HasChanges {
		return Mismatch{Fixture: f.Name, Field: "has_changes", Want: f.Expected.HasChanges, Got: hasChanges}
	}

	gotTypes := make([]string, len(edits))
	for i, e := range edits {
		gotTypes[i] = e.Kind.String()
	}
	if !stringsEqual(gotTypes, f.Expected.EditTypes) {
		return Mismatch{Fixture: f.Name, Field: "edit_types", Want: f.Expected.EditTypes, Got: gotTypes}
	}

	gotCodes := make([]string, len(finds))
	for i, fnd := range finds {
		gotCodes[i] = string(fnd.Code)
	}
	if !stringsEqual(gotCodes, f.Expected.FindingCodes) {
		return Mismatch{Fixture: f.Name, Field: "finding_codes", Want: f.Expected.FindingCodes, Got: gotCodes}
	}

	return nil
}

// RunAll runs every fixture in order and returns the first failure, so the
// CLI can report a single diagnostic line and stop (spec §7).
func RunAll(fixtures []Fixture) error {
	for _, f := range fixtures {
		if err := Run(f); err != nil {
			return err
		}
	}
	return nil
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
