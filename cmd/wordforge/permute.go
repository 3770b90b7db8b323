package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordforge/internal/permute"
)

var permuteCmd = &cobra.Command{
	Use:   "permute [flags]",
	Short: "Pair up a weighted wordlist",
	Long: `Permute reads "word weight" lines and writes every ordered pair of
distinct words as "word1 word2", sorted descending by combined weight
and then by first-word weight.`,
	Args: cobra.NoArgs,
	RunE: runPermute,
}

func init() {
	registerStreamFlags(permuteCmd)
	permuteCmd.Flags().Bool("lenient", false, "treat missing or unparsable weights as unweighted input instead of failing")
}

func runPermute(cmd *cobra.Command, args []string) error {
	lenient, err := cmd.Flags().GetBool("lenient")
	if err != nil {
		return fmt.Errorf("failed to get lenient flag: %w", err)
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

	if err := permute.New(lenient).Run(cmd.Context(), in, out); err != nil {
		_ = closeOut()
		return err
	}
	return closeOut()
}
