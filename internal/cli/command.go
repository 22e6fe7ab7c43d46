// Package cli builds the pephom command line.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"pephom/internal/config"
	"pephom/internal/version"
)

const flagConfig = "config"

// UsageError marks failures that should be answered with the usage text.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// RunFunc receives the validated configuration.
type RunFunc func(cmd *cobra.Command, cfg config.Config) error

// NewRootCommand returns the pephom command. Flags are bound to v so that
// environment variables and a config file can fill the same settings.
func NewRootCommand(v *viper.Viper, run RunFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pephom --proteins FILE --peptides FILE --pident_threshold N [flags]",
		Short: "Match peptides against proteins by ungapped percent identity",
		Long: `Matches a set of peptides against a set of proteins using simple matching rules.
Every window of each protein with the length of the peptide is scored residue by
residue; only windows with a percent identity at or above --pident_threshold are
reported. Without --use_identical, D/E, I/L/V, Q/N and S/T count as matches.`,
		Example: `  pephom --proteins proteins.tsv --peptides peptides.tsv --pident_threshold 80
  pephom --proteins proteins.tsv --peptides peptides.tsv --pident_threshold 100 --use_identical
  pephom --config run.yaml --output sqlite --db matches.db`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &UsageError{fmt.Errorf("unexpected arguments: %s", strings.Join(args, " "))}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, _ := cmd.Flags().GetString(flagConfig)
			cfg, err := config.Load(v, file)
			if err != nil {
				return &UsageError{err}
			}
			return run(cmd, cfg)
		},
	}
	cmd.SetVersionTemplate("pephom version {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{err}
	})

	fs := cmd.Flags()
	fs.SortFlags = false
	Register(fs)
	if err := v.BindPFlags(fs); err != nil {
		panic(err) // only fails on a nil flag
	}
	return cmd
}

// Register wires every pephom flag onto fs.
func Register(fs *pflag.FlagSet) {
	// Inputs
	fs.String(config.KeyProteins, "", "proteins file: 4 tab-separated columns (name, species, sequence, uniprot id) [required]")
	fs.String(config.KeyPeptides, "", "peptides file: 4 tab-separated columns (name, sequence, function, species) [required]")

	// Matching
	fs.Float64(config.KeyThreshold, 0, "report matches with this percent identity or higher, e.g. 80 [required]")
	fs.Bool(config.KeyUseIdentical, false, "score exact matches only; otherwise D/E, I/L/V, Q/N and S/T also match")
	fs.Bool(config.KeyStrictThreshold, false, "reject --pident_threshold values outside 0-100")

	// Output
	fs.StringP(config.KeyOutput, "o", "text", "output format: "+strings.Join(config.Formats, " | "))
	fs.String(config.KeyDB, "", "SQLite database file for --output sqlite")
	fs.Bool(config.KeyNoHeader, false, "suppress the header line in text output")
	fs.Int(config.KeyNoMatchExitCode, 0, "exit code when no matches are found")

	// Diagnostics
	fs.BoolP(config.KeyQuiet, "q", false, "suppress per-protein progress lines on stderr")
	fs.Bool(config.KeySummary, false, "print run statistics to stderr when done")
	fs.String(config.KeyLogLevel, "warn", "log level: debug | info | warn | error")
	fs.String(flagConfig, "", "read settings from a YAML, TOML or JSON file")
}

// IsUsage reports whether err should be followed by the usage text.
func IsUsage(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}
