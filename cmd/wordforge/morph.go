package main

import (
	"github.com/spf13/cobra"

	"wordforge/internal/logging"
	"wordforge/internal/morph"
)

var morphCmd = &cobra.Command{
	Use:   "morph [flags] SPEC...",
	Short: "Emit capitalization variants of candidate lines",
	Long: `Morph reads candidate lines and writes every uppercase-span variant
each rule produces. Rules follow

    w<start>[-<end>]<dir><pos>{<min>-<max>}

where w selects 1-based word indices, dir is '^' (from the front) or
'$' (from the back), pos anchors the window and min-max are the span
lengths to try. A line a rule cannot be applied to is logged on stderr
and skipped for that rule only.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMorph,
}

func init() {
	registerStreamFlags(morphCmd)
}

func runMorph(cmd *cobra.Command, args []string) error {
	specs, err := morph.ParseSpecs(args)
	if err != nil {
		return err
	}

	log, err := logging.NewConsoleLogger("warn")
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	in, _, closeIn, err := inputFile(cmd)
	if err != nil {
		return err
	}
	defer closeIn()

	out, _, closeOut, err := outputFile(cmd)
	if err != nil {
		return err
	}

	if err := morph.New(specs, log).Run(cmd.Context(), in, out); err != nil {
		_ = closeOut()
		return err
	}
	return closeOut()
}
