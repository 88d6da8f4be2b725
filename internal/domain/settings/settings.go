// Package settings loads optional runner defaults from a runbook.toml
// file. Everything here has a sensible zero default; the file is purely a
// convenience for operators who run many plans.
package settings

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is the settings file looked up in the working directory.
const DefaultFile = "runbook.toml"

// Settings are operator-level defaults, overridable by flags.
type Settings struct {
	// CheckpointDir is where failure checkpoints are written. Empty
	// means the system temp directory.
	CheckpointDir string `toml:"checkpoint_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// DryRun makes every run a dry run unless overridden on the
	// command line.
	DryRun bool `toml:"dry_run"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		LogLevel: "info",
	}
}

// Load reads settings from path. A missing file is not an error and
// yields the defaults; a present but unparsable file is.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, err
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}
