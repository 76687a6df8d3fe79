// Package fixture loads and runs the JSON fixture format the
// netform-replay-fixtures binary iterates (spec §6): a named scenario with
// two config texts, a normalization/policy configuration, and the expected
// shape of the resulting diff.
package fixture

import (
	"github.com/netform-dev/netform/internal/compare"
)

// Expected is the subset of a Diff a fixture asserts against: whether any
// change was found, the ordered edit-kind sequence, and the ordered
// finding-code sequence. Exact text/anchors are not asserted — only shape.
type Expected struct {
	HasChanges  bool     `json:"has_changes"`
	EditTypes   []string `json:"edit_types"   validate:"dive,oneof=Insert Delete Replace"`
	FindingCodes []string `json:"finding_codes"`
}

// Fixture is one scenario under a fixtures/ directory.
type Fixture struct {
	Name              string                      `json:"name"     validate:"required"`
	Dialect           string                      `json:"dialect"`
	Intended          string                      `json:"intended" validate:"required"`
	Actual            string                      `json:"actual"   validate:"required"`
	NormalizationSteps []compare.NormalizationStep `json:"normalization_steps"`
	OrderPolicy       compare.OrderPolicyConfig  `json:"order_policy"`
	Expected          Expected                   `json:"expected"`
}

// dialectName returns f.Dialect, defaulting to "generic" per spec §6.
func (f Fixture) dialectName() string {
	if f.Dialect == "" {
		return "generic"
	}
	return f.Dialect
}
