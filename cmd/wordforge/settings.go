package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordforge/internal/config"
	"wordforge/internal/mask"
)

// loadSettings discovers the nearest wordforge.toml and resolves the
// expansion limits, letting persistent flags override manifest values.
// A missing manifest is fine; built-in defaults apply.
func loadSettings(cmd *cobra.Command) (*config.File, mask.Limits, error) {
	cfg, _, err := config.Discover(".")
	if err != nil {
		return nil, mask.Limits{}, err
	}

	limits, err := cfg.MaskLimits()
	if err != nil {
		return nil, mask.Limits{}, err
	}

	maxBranches, err := cmd.Root().PersistentFlags().GetUint64("max-branches")
	if err != nil {
		return nil, mask.Limits{}, fmt.Errorf("failed to get max-branches flag: %w", err)
	}
	if maxBranches > 0 {
		limits.MaxBranches = maxBranches
	}

	maxDepth, err := cmd.Root().PersistentFlags().GetInt("max-depth")
	if err != nil {
		return nil, mask.Limits{}, fmt.Errorf("failed to get max-depth flag: %w", err)
	}
	if maxDepth > 0 {
		limits.MaxDepth = maxDepth
	}

	return cfg, limits, nil
}
