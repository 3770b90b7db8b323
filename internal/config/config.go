// Package config loads the wordforge.toml project manifest.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"

	"wordforge/internal/mask"
)

// ManifestName is the file the loader walks up the directory tree for.
const ManifestName = "wordforge.toml"

// Defaults used when a manifest is absent or leaves a key unset.
const (
	DefaultLogFile  = "wordforge.log"
	DefaultLogLevel = "info"
)

// File is a decoded manifest. Zero values mean "use the built-in
// default"; accessors apply them.
type File struct {
	Limits LimitsSection `toml:"limits"`
	Fill   FillSection   `toml:"fill"`
	Log    LogSection    `toml:"log"`
}

// LimitsSection bounds mask expansion.
type LimitsSection struct {
	MaxBranches int64 `toml:"max_branches"`
	MaxDepth    int   `toml:"max_depth"`
}

// FillSection provides the default mask list for fill runs that pass
// none on the command line.
type FillSection struct {
	Masks []string `toml:"masks"`
}

// LogSection configures the run log.
type LogSection struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Find walks up from startDir to locate the manifest.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes one manifest file. Unknown keys are an error, so a typo
// never silently falls back to a default.
func Load(path string) (*File, error) {
	var f File
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return &f, nil
}

// Discover loads the nearest manifest above startDir. Without one it
// returns an all-defaults File and an empty path.
func Discover(startDir string) (*File, string, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return &File{}, "", nil
	}
	f, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return f, path, nil
}

// MaskLimits converts the limits section for the expansion engine,
// rejecting negative ceilings. Unset values stay zero so the engine's
// own defaults apply.
func (f *File) MaskLimits() (mask.Limits, error) {
	maxBranches, err := safecast.Conv[uint64](f.Limits.MaxBranches)
	if err != nil {
		return mask.Limits{}, fmt.Errorf("[limits].max_branches: %w", err)
	}
	if f.Limits.MaxDepth < 0 {
		return mask.Limits{}, fmt.Errorf("[limits].max_depth must not be negative, got %d", f.Limits.MaxDepth)
	}
	return mask.Limits{MaxDepth: f.Limits.MaxDepth, MaxBranches: maxBranches}, nil
}

// LogFile returns the configured run log path or the default.
func (f *File) LogFile() string {
	if strings.TrimSpace(f.Log.File) != "" {
		return f.Log.File
	}
	return DefaultLogFile
}

// LogLevel returns the configured log level or the default.
func (f *File) LogLevel() string {
	if strings.TrimSpace(f.Log.Level) != "" {
		return f.Log.Level
	}
	return DefaultLogLevel
}
