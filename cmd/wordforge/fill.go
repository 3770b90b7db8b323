package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wordforge/internal/config"
	"wordforge/internal/diagfmt"
	"wordforge/internal/fill"
	"wordforge/internal/mask"
)

var fillCmd = &cobra.Command{
	Use:   "fill [flags] [MASK...]",
	Short: "Join word pairs with expanded separators",
	Long: `Fill reads "word1 word2" lines and writes word1+separator+word2 for
every separator each mask expands to. Lines that do not hold exactly
two words are skipped. Without mask arguments the [fill].masks list
from wordforge.toml applies.`,
	RunE: runFill,
}

func init() {
	registerStreamFlags(fillCmd)
}

func runFill(cmd *cobra.Command, args []string) error {
	cfg, limits, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	masks := args
	if len(masks) == 0 {
		masks = cfg.Fill.Masks
	}
	if len(masks) == 0 {
		return fmt.Errorf("no masks: pass them as arguments or set [fill].masks in %s", config.ManifestName)
	}

	stage, err := fill.New(cmd.Context(), masks, limits)
	if err != nil {
		return reportMaskError(cmd, err)
	}

	in, _, closeIn, err := inputFile(cmd)
	if err != nil {
		return err
	}
	defer closeIn()

	out, _, closeOut, err := outputFile(cmd)
	if err != nil {
		return err
	}

	if err := stage.Run(cmd.Context(), in, out); err != nil {
		_ = closeOut()
		return err
	}
	return closeOut()
}

// reportMaskError renders a malformed mask with a caret on stderr and
// returns a terse error for cobra to surface. Non-parse errors (budget
// breaches) pass through untouched.
func reportMaskError(cmd *cobra.Command, err error) error {
	var perr *mask.ParseError
	if !errors.As(err, &perr) {
		return err
	}
	colorFlag, flagErr := cmd.Root().PersistentFlags().GetString("color")
	if flagErr != nil {
		colorFlag = "auto"
	}
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
	diagfmt.PrettyParseError(os.Stderr, perr, useColor)
	return fmt.Errorf("mask %q is malformed", perr.Mask)
}
