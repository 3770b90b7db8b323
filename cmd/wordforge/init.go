package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"wordforge/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize a new wordforge project",
	Long: `Initialize a new wordforge project by creating a project manifest
(wordforge.toml) and a sample weighted wordlist (words.txt). If [path]
is omitted, initializes the current directory. If a non-existing path
is provided, the directory will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

// runInit creates the manifest and sample wordlist at the target path
// (or the current working directory when no argument or "." is given),
// creating the directory first when needed. It refuses to initialize a
// directory that already carries a wordforge.toml.
func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	manifestPath := filepath.Join(target, config.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}
	if err := os.WriteFile(manifestPath, []byte(defaultManifest()), os.FileMode(0o600)); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	wordsPath := filepath.Join(target, "words.txt")
	createdWords := false
	if _, err := os.Stat(wordsPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(wordsPath, []byte(defaultWordlist()), 0o600); err != nil {
			return fmt.Errorf("failed to write words.txt: %w", err)
		}
		createdWords = true
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "Initialized wordforge project in %s\n", rel)
	fmt.Fprintf(os.Stdout, "  - %s\n", config.ManifestName)
	if createdWords {
		fmt.Fprintf(os.Stdout, "  - words.txt\n")
	} else {
		fmt.Fprintf(os.Stdout, "  - words.txt (existing)\n")
	}
	return nil
}

// defaultManifest returns the starter wordforge.toml. Every key carries
// its built-in default so a new project is self-documenting.
func defaultManifest() string {
	return fmt.Sprintf(`# wordforge project manifest
[limits]
max_branches = 1000000
max_depth = 64

[fill]
masks = ["pass?d?d?^"]

[log]
file = %q
level = %q
`, config.DefaultLogFile, config.DefaultLogLevel)
}

// defaultWordlist returns a tiny weighted wordlist so `wordforge chain
// --permute -i words.txt` works out of the box. The weight is the last
// field of each line.
func defaultWordlist() string {
	return `password 9
dragon 7
letmein 4
hunter2 1
`
}
