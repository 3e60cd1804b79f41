// Package config loads the runner settings from an optional config file
// and the command line flags.
package config

import (
	"errors"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	aoc "github.com/maisem/aoc2021"
)

// DefaultInputsDir is where puzzle inputs are looked up when neither a
// flag nor the config file says otherwise.
const DefaultInputsDir = "puzzle-inputs"

// Config holds the runner settings.
type Config struct {
	// InputsDir holds the dayNN-input files.
	InputsDir string `mapstructure:"inputs_dir" validate:"required"`
	Debug     bool   `mapstructure:"debug"`
}

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"inputs_dir": "inputs-dir",
	"debug":      "debug",
}

// Load reads the config file at path, if path is not empty, and applies
// any flags in flags that were set on the command line. Environment
// variables are not consulted.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("inputs_dir", DefaultInputsDir)
	v.SetDefault("debug", false)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var pe *fs.PathError
			if errors.As(err, &pe) {
				return nil, &aoc.IOError{Path: path, Err: pe.Err}
			}
			return nil, aoc.Usagef("config %s: %v", path, err)
		}
	}
	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, aoc.Usagef("config: %v", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, aoc.Usagef("config: %v", err)
	}
	return &cfg, nil
}
