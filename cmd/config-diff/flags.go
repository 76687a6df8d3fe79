package main

import (
	"fmt"
	"slices"

	"github.com/netform-dev/netform/internal/clierr"
	"github.com/netform-dev/netform/internal/compare"
	"github.com/netform-dev/netform/internal/dialect"
)

var validOrderPolicies = []string{
	string(compare.PolicyOrdered),
	string(compare.PolicyUnordered),
	string(compare.PolicyKeyedStable),
}

var validColorModes = []string{"auto", "always", "never"}

// validateFlags checks enum-valued flags before any file I/O happens, so a
// typo in --dialect or --order-policy fails fast with ExitArgError instead
// of propagating into C3/C4 (spec §7, SPEC_FULL §10.4).
func validateFlags() error {
	if !slices.Contains(dialect.Names(), dialectFlag) {
		return fmt.Errorf("--dialect %q: %w", dialectFlag, clierr.ErrUnknownDialect)
	}
	if !slices.Contains(validOrderPolicies, orderPolicyFlag) {
		return fmt.Errorf("--order-policy %q: %w", orderPolicyFlag, clierr.ErrUnknownOrderPolicy)
	}
	if !slices.Contains(validColorModes, colorFlag) {
		return fmt.Errorf("--color %q: must be one of %v: %w", colorFlag, validColorModes, clierr.ErrInvalidFlagValue)
	}
	return nil
}

func normalizationSteps() []compare.NormalizationStep {
	var steps []compare.NormalizationStep
	if ignoreComments {
		steps = append(steps, compare.StepIgnoreComments)
	}
	if ignoreBlankLines {
		steps = append(steps, compare.StepIgnoreBlankLines)
	}
	if normalizeWhitespace {
		steps = append(steps, compare.StepCollapseInternalWhitespace)
	}
	return steps
}
