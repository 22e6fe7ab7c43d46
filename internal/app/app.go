// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pephom/internal/cli"
	"pephom/internal/cmdutil"
	"pephom/internal/config"
	"pephom/internal/logger"
	"pephom/internal/pipeline"
	"pephom/internal/records"
	"pephom/internal/residue"
	"pephom/internal/stats"
	"pephom/internal/writers"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitUsage       = 2 // bad arguments or malformed input
	ExitFailure     = 3 // output or internal failure
	ExitInterrupted = 130
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	code := ExitOK
	cmd := cli.NewRootCommand(config.New(), func(cmd *cobra.Command, cfg config.Config) error {
		code = execute(cmd.Context(), cfg, stdout, stderr)
		return nil
	})
	if argv == nil {
		argv = []string{} // cobra falls back to os.Args on nil
	}
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(parent); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		if cli.IsUsage(err) {
			_, _ = fmt.Fprint(stderr, cmd.UsageString())
		}
		return ExitUsage
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// execute loads both tables, scans every pair and streams hits to the writer.
func execute(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) int {
	logger.SetOutput(stderr)
	logger.SetLevel(cfg.LogLevel)
	for _, w := range cfg.Warnings() {
		logger.Warnf("%s", w)
	}

	proteins, err := records.LoadProteins(cfg.Proteins)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	}
	peptides, err := records.LoadPeptides(cfg.Peptides)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	}
	mode := residue.ParseMode(cfg.UseIdentical)
	logger.Infof("loaded %d proteins from %s and %d peptides from %s", len(proteins), cfg.Proteins, len(peptides), cfg.Peptides)
	logger.Infof("scoring mode %s, threshold %v%%", mode, cfg.PidentThreshold)
	if mode == residue.Similar {
		for _, p := range residue.Pairs() {
			logger.Debugf("equivalent residues %c=%c", p.A, p.B)
		}
	}

	w, err := writers.New(ctx, cfg.Output, stdout, writers.Options{Header: !cfg.NoHeader, DBPath: cfg.DB})
	if writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitFailure
	}

	var rec stats.Recorder
	st, perr := pipeline.ForEachHit(ctx,
		pipeline.Config{
			Threshold: cfg.Fraction(),
			Mode:      mode,
			Progress: func(p records.Protein) {
				cmdutil.Progressf(stderr, cfg.Quiet, "Processing protein: %s", p.Name)
			},
			AfterProtein: func(records.Protein) error { return w.Flush() },
		},
		proteins, peptides,
		func(h pipeline.Hit) error {
			if cfg.Summary {
				rec.Add(h.Match.PIdent)
			}
			return w.Write(h)
		},
	)
	cerr := w.Close()

	if writers.IsBrokenPipe(perr) || (perr == nil && writers.IsBrokenPipe(cerr)) {
		return ExitOK
	}
	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			_, _ = fmt.Fprintln(stderr, "interrupted")
			return ExitInterrupted
		}
		_, _ = fmt.Fprintln(stderr, "error:", perr)
		return ExitFailure
	}
	if cerr != nil {
		_, _ = fmt.Fprintln(stderr, "error:", cerr)
		return ExitFailure
	}

	logger.Infof("scanned %d proteins x %d peptides, %d matches", st.Proteins, st.Peptides, st.Hits)
	if cfg.Summary {
		_, _ = fmt.Fprintf(stderr, "proteins: %d\npeptides: %d\npairs: %d\n", st.Proteins, st.Peptides, st.Pairs)
		_ = rec.Summary().Write(stderr)
	}
	if st.Hits == 0 {
		return cfg.NoMatchExitCode
	}
	return ExitOK
}
