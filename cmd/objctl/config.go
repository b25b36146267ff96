package main

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

const configFileName = ".objctl.yaml"

// configDefaults mirrors the global flags that can be preset from the
// config file. Flags given on the command line still win: cobra parses them
// after these defaults are applied.
type configDefaults struct {
	Verbose bool `mapstructure:"verbose"`
	Quiet   bool `mapstructure:"quiet"`
	JSON    bool `mapstructure:"json"`
}

// loadConfigDefaults applies ~/.objctl.yaml if present. A missing file is
// not an error; a malformed one is ignored rather than blocking every
// invocation.
func loadConfigDefaults() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}

	raw, err := os.ReadFile(filepath.Join(home, configFileName))
	if err != nil {
		return
	}

	var loose map[string]any
	if err := yaml.Unmarshal(raw, &loose); err != nil {
		return
	}

	var defaults configDefaults
	if err := mapstructure.Decode(loose, &defaults); err != nil {
		return
	}

	verbose = defaults.Verbose
	quiet = defaults.Quiet
	jsonOut = defaults.JSON
}
