package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/netform-dev/netform/internal/compare"
	"github.com/netform-dev/netform/internal/dialect"
	"github.com/netform-dev/netform/internal/diffengine"
	"github.com/netform-dev/netform/internal/diffjson"
	"github.com/netform-dev/netform/internal/findings"
	"github.com/netform-dev/netform/internal/ir"
	"github.com/netform-dev/netform/internal/plan"
	"github.com/netform-dev/netform/internal/report"
)

func runConfigDiff(cmd *cobra.Command, args []string) error {
	pathA, pathB := args[0], args[1]

	textA, err := os.ReadFile(pathA)
	if err != nil {
		return fmt.Errorf("read %s: %w", pathA, err)
	}
	textB, err := os.ReadFile(pathB)
	if err != nil {
		return fmt.Errorf("read %s: %w", pathB, err)
	}

	dia := dialect.ByName(dialectFlag)
	logger.Debug("parsing configurations", "dialect", dia.Name(), "left", pathA, "right", pathB)

	leftDoc := ir.Parse(string(textA), dia, pathA)
	rightDoc := ir.Parse(string(textB), dia, pathB)

	steps := normalizationSteps()
	policy := compare.OrderPolicyConfig{Default: compare.OrderPolicy(orderPolicyFlag)}
	opts := compare.NormalizeOptions{Steps: steps, OrderPolicy: policy}

	leftView := compare.Flatten(leftDoc, dia, opts)
	rightView := compare.Flatten(rightDoc, dia, opts)

	edits, fallbackContexts := diffengine.DiffDocuments(leftView, rightView, policy)
	finds := findings.Derive(leftDoc, rightDoc, leftView, rightView, fallbackContexts)
	stats := diffengine.AggregateStats(edits)

	logger.Debug("diff complete", "edits", len(edits), "findings", len(finds))

	switch {
	case planJSON:
		p := plan.Derive(edits)
		doc := diffjson.BuildPlan(p)
		out, err := diffjson.MarshalPlan(doc)
		if err != nil {
			return fmt.Errorf("marshal plan json: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	case jsonOutput:
		doc := diffjson.BuildDiff(steps, policy, edits, stats, finds)
		out, err := diffjson.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshal diff json: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	case yamlOutput:
		doc := diffjson.BuildDiff(steps, policy, edits, stats, finds)
		out, err := diffjson.MarshalYAML(doc)
		if err != nil {
			return fmt.Errorf("marshal diff yaml: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
	default:
		md := report.Markdown(pathA, pathB, edits, stats, finds)
		if colorFlag != "never" && report.IsInteractive() {
			md = report.Terminal(md, stats)
		}
		fmt.Fprint(cmd.OutOrStdout(), md)
	}

	return nil
}
