// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// envOverride declares a single environment variable override.
type envOverride struct {
	envKey string
	flag   string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of every environment variable
// override, applied only to flags the caller did not set explicitly
// (CLI flags outrank environment variables in the resolution chain).
var envOverrides = []envOverride{
	{"THRESHOLD", "threshold", func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Threshold = parsed
		}
	}},
	{"PARALLEL", "parallel", func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Parallel = parsed
		}
	}},
	{"SIMD_TIER", "simd-tier", func(c *AppConfig, v string) {
		c.SIMDTier = v
	}},
	{"CALIBRATION_PROFILE", "calibration-profile", func(c *AppConfig, v string) {
		c.CalibrationProfile = v
	}},
	{"BATCH_FILE", "batch", func(c *AppConfig, v string) {
		c.BatchFile = v
	}},
	{"SERVER_ADDR", "listen", func(c *AppConfig, v string) {
		c.ServerAddr = v
	}},
	{"TIMEOUT", "timeout", func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},
	{"VALIDITY_CHECKS", "validity-checks", func(c *AppConfig, v string) {
		c.ValidityChecks = parseBoolEnv(v, c.ValidityChecks)
	}},
	{"CALIBRATE", "calibrate", func(c *AppConfig, v string) {
		c.Calibrate = parseBoolEnv(v, c.Calibrate)
	}},
	{"TUI", "tui", func(c *AppConfig, v string) {
		c.TUI = parseBoolEnv(v, c.TUI)
	}},
	{"VERBOSE", "verbose", func(c *AppConfig, v string) {
		c.Verbose = parseBoolEnv(v, c.Verbose)
	}},
}

func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// ApplyEnvOverrides applies environment variable values to cfg for every
// flag the caller did not explicitly set on fs, implementing the priority
// "CLI flags > environment variables > defaults" (package doc).
func ApplyEnvOverrides(cfg *AppConfig, fs *flag.FlagSet) {
	shorthand := map[string]string{"batch": "b", "parallel": "p"}
	for _, o := range envOverrides {
		if isFlagSet(fs, o.flag) || isFlagSet(fs, shorthand[o.flag]) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(cfg, val)
		}
	}
}
