package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/netform-dev/netform/internal/clierr"
	"github.com/netform-dev/netform/internal/fixture"
)

func runReplayFixtures(cmd *cobra.Command, _ []string) error {
	dir := fixturesDirFlag
	if !cmd.Flags().Changed("fixtures-dir") && cfg.FixturesDir != "" {
		dir = cfg.FixturesDir
	}

	fixtures, err := fixture.LoadDir(dir)
	if err != nil {
		return fmt.Errorf("load fixtures from %s: %w", dir, err)
	}
	logger.Debug("loaded fixtures", "dir", dir, "count", len(fixtures))

	if err := fixture.RunAll(fixtures); err != nil {
		return fmt.Errorf("%w: %s", clierr.ErrFixtureMismatch, err.Error())
	}

	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d fixture(s) passed\n", len(fixtures))
	return nil
}
