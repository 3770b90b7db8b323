package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wordforge/internal/diagfmt"
	"wordforge/internal/mask"
)

var expandCmd = &cobra.Command{
	Use:   "expand [flags] MASK...",
	Short: "Expand separator masks",
	Long: `Expand prints every separator a mask denotes, one per line, in the
same order the fill stage uses. --tree prints the parsed element tree
instead, --count only the pre-pruning branch estimate. Mask grammar:

    ?d      one decimal digit, branching ten ways
    ?^      shift-row symbol of the earliest unreferenced digit
    {...}   group; a '-' directly after the closing brace reverses
            the group's text
    other   literal character`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExpand,
}

func init() {
	expandCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	expandCmd.Flags().Bool("tree", false, "print parsed element trees instead of expanding")
	expandCmd.Flags().Bool("count", false, "print branch estimates instead of expanding")
}

func runExpand(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	showTree, err := cmd.Flags().GetBool("tree")
	if err != nil {
		return fmt.Errorf("failed to get tree flag: %w", err)
	}
	countOnly, err := cmd.Flags().GetBool("count")
	if err != nil {
		return fmt.Errorf("failed to get count flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if showTree && countOnly {
		return fmt.Errorf("--tree and --count are mutually exclusive")
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	_, limits, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	// Parse everything first so a bad mask fails the run before any
	// output, matching the fill stage's fail-fast construction.
	trees := make([][]mask.Element, len(args))
	for i, m := range args {
		elems, err := mask.Parse(m, limits.ParseOptions())
		if err != nil {
			return reportMaskError(cmd, err)
		}
		trees[i] = elems
	}

	switch {
	case showTree:
		return writeTrees(format, args, trees)
	case countOnly:
		return writeEstimates(format, args, trees)
	default:
		return writeExpansions(format, quiet, args, trees, limits)
	}
}

func writeTrees(format string, masks []string, trees [][]mask.Element) error {
	if format == "json" {
		output := make([]diagfmt.MaskTreeOutput, len(masks))
		for i, m := range masks {
			output[i] = diagfmt.MaskTreeOutput{Mask: m, Elements: diagfmt.ElementsJSON(trees[i])}
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(output)
	}

	for i, m := range masks {
		if i > 0 {
			if _, err := fmt.Fprintln(os.Stdout); err != nil {
				return err
			}
		}
		if err := diagfmt.FormatElementsPretty(os.Stdout, m, trees[i]); err != nil {
			return err
		}
	}
	return nil
}

func writeEstimates(format string, masks []string, trees [][]mask.Element) error {
	output := make([]diagfmt.ExpansionOutput, len(masks))
	for i, m := range masks {
		est, err := mask.EstimateBranches(trees[i])
		if err != nil {
			return fmt.Errorf("mask %q: %w", m, err)
		}
		output[i] = diagfmt.ExpansionOutput{Mask: m, Estimate: est}
	}

	if format == "json" {
		return diagfmt.FormatExpansionsJSON(os.Stdout, output)
	}
	for _, entry := range output {
		if _, err := fmt.Fprintf(os.Stdout, "%s: %d branches\n", entry.Mask, entry.Estimate); err != nil {
			return err
		}
	}
	return nil
}

func writeExpansions(format string, quiet bool, masks []string, trees [][]mask.Element, limits mask.Limits) error {
	output := make([]diagfmt.ExpansionOutput, len(masks))
	for i, m := range masks {
		if err := mask.CheckBudget(trees[i], limits); err != nil {
			return fmt.Errorf("mask %q: %w", m, err)
		}
		est, err := mask.EstimateBranches(trees[i])
		if err != nil {
			return fmt.Errorf("mask %q: %w", m, err)
		}
		output[i] = diagfmt.ExpansionOutput{
			Mask:       m,
			Estimate:   est,
			Candidates: mask.ExpandElements(trees[i]),
		}
	}

	if format == "json" {
		return diagfmt.FormatExpansionsJSON(os.Stdout, output)
	}

	for i, entry := range output {
		if len(masks) > 1 && !quiet {
			if i > 0 {
				if _, err := fmt.Fprintln(os.Stdout); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(os.Stdout, "== %s ==\n", entry.Mask); err != nil {
				return err
			}
		}
		for _, sep := range entry.Candidates {
			if _, err := fmt.Fprintln(os.Stdout, sep); err != nil {
				return err
			}
		}
	}
	return nil
}
