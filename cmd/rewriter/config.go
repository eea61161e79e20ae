package main

import (
	"fmt"

	"github.com/spf13/viper"
)

// RunConfig is the fully-resolved set of options driving one run, after
// flags and an optional config file have been merged. A flag the user
// actually typed always wins over the config file; the config file
// only fills in values the user left at their flag default.
type RunConfig struct {
	Equivalence string
	Leaves      int
	Direction   string
	LogLevel    string
	Format      string
}

// loadConfig merges flagValues with configPath (if non-empty) via
// Viper, treating flagValues as the defaults a config file may
// override. explicitFlags names the Viper keys ("equivalence",
// "leaves", "direction", "log_level", "format") the caller actually
// passed on the command line; those are re-applied with Viper's Set
// after the config file is read, since Set is the one precedence tier
// that outranks a config file, keeping an explicit flag in charge over
// whatever the file says.
func loadConfig(configPath string, flagValues RunConfig, explicitFlags map[string]bool) (RunConfig, error) {
	v := viper.New()
	v.SetDefault("equivalence", flagValues.Equivalence)
	v.SetDefault("leaves", flagValues.Leaves)
	v.SetDefault("direction", flagValues.Direction)
	v.SetDefault("log_level", flagValues.LogLevel)
	v.SetDefault("format", flagValues.Format)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return RunConfig{}, fmt.Errorf("loadConfig: %w", err)
		}
	}

	if explicitFlags["equivalence"] {
		v.Set("equivalence", flagValues.Equivalence)
	}
	if explicitFlags["leaves"] {
		v.Set("leaves", flagValues.Leaves)
	}
	if explicitFlags["direction"] {
		v.Set("direction", flagValues.Direction)
	}
	if explicitFlags["log_level"] {
		v.Set("log_level", flagValues.LogLevel)
	}
	if explicitFlags["format"] {
		v.Set("format", flagValues.Format)
	}

	return RunConfig{
		Equivalence: v.GetString("equivalence"),
		Leaves:      v.GetInt("leaves"),
		Direction:   v.GetString("direction"),
		LogLevel:    v.GetString("log_level"),
		Format:      v.GetString("format"),
	}, nil
}
