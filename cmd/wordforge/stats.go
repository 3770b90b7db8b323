package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wordforge/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats [flags]",
	Short: "Summarize a candidate stream",
	Long: `Stats consumes candidate lines and prints their count plus the
shortest, longest and average length in runes.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringP("input", "i", "", "input file (default stdin)")
	statsCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runStats(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	in, _, closeIn, err := inputFile(cmd)
	if err != nil {
		return err
	}
	defer closeIn()

	rep, err := stats.Collect(cmd.Context(), in)
	if err != nil {
		return err
	}

	switch format {
	case "pretty":
		return rep.WriteText(os.Stdout)
	case "json":
		return rep.WriteJSON(os.Stdout)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
