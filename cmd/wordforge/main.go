// Package main implements the wordforge CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"wordforge/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "wordforge",
	Short: "Password-candidate mutation pipeline",
	Long: `Wordforge expands small wordlists into large sets of plausible
password guesses by chaining mutation stages over text streams:
weighted pair permutation, separator filling driven by a mask
language, and capitalization morphing.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(permuteCmd)
	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(morphCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(chainCmd)
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Uint64("max-branches", 0, "per-mask branch ceiling (0 = manifest or built-in default)")
	rootCmd.PersistentFlags().Int("max-depth", 0, "mask nesting limit (0 = manifest or built-in default)")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
