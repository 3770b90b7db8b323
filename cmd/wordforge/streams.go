package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// registerStreamFlags adds the --input/--output pair every stream
// command carries.
func registerStreamFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "input file (default stdin)")
	cmd.Flags().StringP("output", "o", "", "output file (default stdout)")
}

// inputFile opens the --input flag target, falling back to stdin. Size
// is the byte length of a regular file, or -1 when unknown (stdin,
// pipes, devices). The close function is a no-op for stdin.
func inputFile(cmd *cobra.Command) (f *os.File, size int64, closeIn func(), err error) {
	path, err := cmd.Flags().GetString("input")
	if err != nil {
		return nil, 0, nil, fmt.Errorf("failed to get input flag: %w", err)
	}
	if path == "" {
		return os.Stdin, -1, func() {}, nil
	}
	f, err = os.Open(path)
	if err != nil {
		return nil, 0, nil, fmt.Errorf("failed to open input: %w", err)
	}
	size = int64(-1)
	if info, statErr := f.Stat(); statErr == nil && info.Mode().IsRegular() {
		size = info.Size()
	}
	return f, size, func() { _ = f.Close() }, nil
}

// outputFile opens the --output flag target for writing, falling back
// to stdout. name is what log entries and summaries should call the
// destination. The close function is a no-op for stdout; for files it
// reports the close error so short writes are not lost silently.
func outputFile(cmd *cobra.Command) (f *os.File, name string, closeOut func() error, err error) {
	path, err := cmd.Flags().GetString("output")
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to get output flag: %w", err)
	}
	if path == "" {
		return os.Stdout, "stdout", func() error { return nil }, nil
	}
	f, err = os.Create(path)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to create output: %w", err)
	}
	return f, path, f.Close, nil
}
