// Package config is for run settings that are unmarshalled from Viper.
//
// Precedence (highest first): command-line flags, PEPHOM_* environment
// variables, the YAML/TOML/JSON file named by --config.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"pephom/internal/logger"
)

// Keys shared by the flag set, the environment and config files.
const (
	KeyProteins        = "proteins"
	KeyPeptides        = "peptides"
	KeyThreshold       = "pident_threshold"
	KeyUseIdentical    = "use_identical"
	KeyOutput          = "output"
	KeyDB              = "db"
	KeyNoHeader        = "no-header"
	KeyQuiet           = "quiet"
	KeySummary         = "summary"
	KeyStrictThreshold = "strict-threshold"
	KeyLogLevel        = "log-level"
	KeyNoMatchExitCode = "no-match-exit-code"

	EnvPrefix = "PEPHOM"
)

var keys = []string{
	KeyProteins, KeyPeptides, KeyThreshold, KeyUseIdentical, KeyOutput, KeyDB,
	KeyNoHeader, KeyQuiet, KeySummary, KeyStrictThreshold, KeyLogLevel, KeyNoMatchExitCode,
}

// Formats are the accepted values of --output.
var Formats = []string{"text", "jsonl", "json", "sqlite"}

// Config is the root-level settings struct.
type Config struct {
	// input tables
	Proteins string `mapstructure:"proteins"`
	Peptides string `mapstructure:"peptides"`

	// percent identity threshold on a 0-100 scale
	PidentThreshold float64 `mapstructure:"pident_threshold"`
	// score identical residues only (no chemical similarity)
	UseIdentical bool `mapstructure:"use_identical"`
	// reject thresholds outside 0-100 instead of warning
	StrictThreshold bool `mapstructure:"strict-threshold"`

	Output          string `mapstructure:"output"`
	DB              string `mapstructure:"db"`
	NoHeader        bool   `mapstructure:"no-header"`
	Quiet           bool   `mapstructure:"quiet"`
	Summary         bool   `mapstructure:"summary"`
	LogLevel        string `mapstructure:"log-level"`
	NoMatchExitCode int    `mapstructure:"no-match-exit-code"`

	// ThresholdSet is true when the threshold came from a flag, env var or file.
	ThresholdSet bool `mapstructure:"-"`
}

// New returns a Viper instance wired for PEPHOM_* environment variables.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// AutomaticEnv alone does not make env-only keys visible to Unmarshal.
	for _, k := range keys {
		_ = v.BindEnv(k)
	}
	return v
}

// Load merges the optional config file into v and decodes the result.
func Load(v *viper.Viper, file string) (Config, error) {
	var c Config
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("reading config file %s: %w", file, err)
		}
	}
	if err := v.Unmarshal(&c, func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = true
	}); err != nil {
		return c, fmt.Errorf("parsing config: %w", err)
	}
	c.ThresholdSet = v.IsSet(KeyThreshold)
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	if c.Output == "" {
		c.Output = "text"
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	return c, c.Validate()
}

// Validate checks required settings and value ranges.
func (c Config) Validate() error {
	switch {
	case c.Proteins == "":
		return errors.New("--proteins is required")
	case c.Peptides == "":
		return errors.New("--peptides is required")
	case !c.ThresholdSet:
		return errors.New("--pident_threshold is required")
	}
	if math.IsNaN(c.PidentThreshold) || math.IsInf(c.PidentThreshold, 0) {
		return fmt.Errorf("--pident_threshold must be a finite number, got %v", c.PidentThreshold)
	}
	if c.StrictThreshold && !c.thresholdInRange() {
		return fmt.Errorf("--pident_threshold must be between 0 and 100, got %v", c.PidentThreshold)
	}
	if !validFormat(c.Output) {
		return fmt.Errorf("invalid --output %q (want %s)", c.Output, strings.Join(Formats, " | "))
	}
	if c.Output == "sqlite" && c.DB == "" {
		return errors.New("--output sqlite requires --db")
	}
	if !logger.ValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid --log-level %q", c.LogLevel)
	}
	if c.NoMatchExitCode < 0 || c.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}

// Warnings lists settings that are accepted but probably unintended.
func (c Config) Warnings() []string {
	var w []string
	if !c.thresholdInRange() {
		w = append(w, fmt.Sprintf("--pident_threshold %v is outside 0-100; %s",
			c.PidentThreshold, outOfRangeEffect(c.PidentThreshold)))
	}
	if c.DB != "" && c.Output != "sqlite" {
		w = append(w, fmt.Sprintf("--db is ignored with --output %s", c.Output))
	}
	return w
}

// Fraction is the threshold scaled to [0,1] for the matcher.
func (c Config) Fraction() float64 { return c.PidentThreshold / 100.0 }

func (c Config) thresholdInRange() bool {
	return c.PidentThreshold >= 0 && c.PidentThreshold <= 100
}

func outOfRangeEffect(t float64) string {
	if t > 100 {
		return "no window can match"
	}
	return "every window matches"
}

func validFormat(f string) bool {
	for _, x := range Formats {
		if f == x {
			return true
		}
	}
	return false
}
