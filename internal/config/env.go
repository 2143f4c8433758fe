// Environment variable overrides (MPCALC_*), applied only to flags the user
// did not pass explicitly.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// setFlags returns the names of the flags given on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// isFlagSetAny reports whether any of names was given on the command line.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	set := setFlags(fs)
	for _, name := range names {
		if set[name] {
			return true
		}
	}
	return false
}

// envOverride binds MPCALC_<key> to a config field. flags lists the
// command-line spellings that win over the variable.
type envOverride struct {
	key   string
	flags []string
	apply func(*AppConfig, string)
}

func intField(field func(*AppConfig) *int) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		if n, err := strconv.Atoi(v); err == nil {
			*field(c) = n
		}
	}
}

func boolField(field func(*AppConfig) *bool) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		p := field(c)
		*p = parseBoolEnv(v, *p)
	}
}

func stringField(field func(*AppConfig) *string) func(*AppConfig, string) {
	return func(c *AppConfig, v string) { *field(c) = v }
}

// Unparsable values are ignored and the flag default stays in effect.
var envOverrides = []envOverride{
	{"OP", []string{"op"}, stringField(func(c *AppConfig) *string { return &c.Op })},
	{"A", []string{"a"}, stringField(func(c *AppConfig) *string { return &c.A })},
	{"B", []string{"b"}, stringField(func(c *AppConfig) *string { return &c.B })},
	{"BASE", []string{"base"}, intField(func(c *AppConfig) *int { return &c.Base })},
	{"ROUNDS", []string{"rounds"}, intField(func(c *AppConfig) *int { return &c.Rounds })},
	{"SEED", []string{"seed"}, func(c *AppConfig, v string) {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = n
		}
	}},
	{"KARATSUBA_THRESHOLD", []string{"karatsuba-threshold"}, intField(func(c *AppConfig) *int { return &c.KaratsubaThreshold })},
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = d
		}
	}},
	{"CALIBRATION_PROFILE", []string{"calibration-profile"}, stringField(func(c *AppConfig) *string { return &c.CalibrationProfile })},
	{"VERIFY", []string{"verify"}, boolField(func(c *AppConfig) *bool { return &c.Verify })},
	{"CALIBRATE", []string{"calibrate"}, boolField(func(c *AppConfig) *bool { return &c.Calibrate })},
	{"CALIBRATE_QUICK", []string{"calibrate-quick"}, boolField(func(c *AppConfig) *bool { return &c.CalibrateQuick })},
	{"QUIET", []string{"quiet", "q"}, boolField(func(c *AppConfig) *bool { return &c.Quiet })},
	{"VERBOSE", []string{"v"}, boolField(func(c *AppConfig) *bool { return &c.Verbose })},
	{"DEBUG", []string{"debug"}, boolField(func(c *AppConfig) *bool { return &c.Debug })},
	{"NO_COLOR", []string{"no-color"}, boolField(func(c *AppConfig) *bool { return &c.NoColor })},
	{"METRICS", []string{"metrics"}, boolField(func(c *AppConfig) *bool { return &c.Metrics })},
}

// parseBoolEnv accepts true/1/yes and false/0/no in any case and returns
// fallback for anything else.
func parseBoolEnv(val string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return fallback
}

// applyEnvOverrides gives flags > environment > defaults precedence.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.key); val != "" {
			o.apply(config, val)
		}
	}
}
