package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jacoelho/dexpi"
	derrors "github.com/jacoelho/dexpi/errors"
)

var version = "dev"

type config struct {
	MinSeverity string `toml:"min_severity"`
	Format      string `toml:"format"`
}

func defaultConfig() config {
	return config{MinSeverity: "info", Format: "text"}
}

type options struct {
	cfgFile     string
	minSeverity string
	format      string
	quiet       bool
	strict      bool
}

func newLogger(out io.Writer, quiet bool) zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	logger := zerolog.New(writer).With().Timestamp().Str("app", "dexpilint").Logger()
	if quiet {
		return logger.Level(zerolog.ErrorLevel)
	}
	return logger
}

// run builds and executes the root command. It is the testable seam:
// main only wires in the process streams.
func run(args []string, stdout, stderr io.Writer) int {
	opts := &options{}

	root := &cobra.Command{
		Use:           "dexpilint [flags] <file.xml>",
		Short:         "Load a Proteus plant-model document and report diagnostics",
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return lint(args[0], opts, stdout, stderr)
		},
	}
	root.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "", "config file (TOML)")
	root.Flags().StringVar(&opts.minSeverity, "min-severity", "", "lowest severity to print (info|warning|error|critical)")
	root.Flags().StringVar(&opts.format, "format", "", "output format (text|json)")
	root.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress the summary log line")
	root.Flags().BoolVar(&opts.strict, "strict", false, "escalate fixed-value metadata mismatches to errors")

	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		var exit exitError
		if ok := asExitError(err, &exit); ok {
			return exit.code
		}
		fmt.Fprintf(stderr, "dexpilint: %v\n", err)
		return 2
	}
	return 0
}

// exitError carries an exit code through cobra's error return.
type exitError struct {
	code int
}

func (e exitError) Error() string { return fmt.Sprintf("exit %d", e.code) }

func asExitError(err error, out *exitError) bool {
	e, ok := err.(exitError)
	if ok {
		*out = e
	}
	return ok
}

func lint(path string, opts *options, stdout, stderr io.Writer) error {
	logger := newLogger(stderr, opts.quiet)

	cfg := defaultConfig()
	if opts.cfgFile != "" {
		if _, err := toml.DecodeFile(opts.cfgFile, &cfg); err != nil {
			return fmt.Errorf("read config %s: %w", opts.cfgFile, err)
		}
	}
	if opts.minSeverity != "" {
		cfg.MinSeverity = opts.minSeverity
	}
	if opts.format != "" {
		cfg.Format = opts.format
	}

	minSev, err := parseSeverity(cfg.MinSeverity)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	result, err := dexpi.LoadWithOptions(f, dexpi.LoadOptions{StrictMetadata: opts.strict})
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	shown := result.Diagnostics.Min(minSev)
	switch cfg.Format {
	case "json":
		if err := writeJSON(stdout, shown); err != nil {
			return err
		}
	case "text":
		for i := range shown {
			fmt.Fprintln(stdout, shown[i].Error())
		}
	default:
		return fmt.Errorf("unknown output format %q", cfg.Format)
	}

	failing := result.Diagnostics.Min(derrors.Error)
	logger.Info().
		Str("file", path).
		Int("diagnostics", len(result.Diagnostics)).
		Int("failing", len(failing)).
		Bool("model", result.Model != nil).
		Msg("load finished")

	if len(failing) > 0 || result.Model == nil {
		return exitError{code: 1}
	}
	return nil
}

func parseSeverity(s string) (derrors.Severity, error) {
	switch s {
	case "info":
		return derrors.Info, nil
	case "warning":
		return derrors.Warning, nil
	case "error":
		return derrors.Error, nil
	case "critical":
		return derrors.Critical, nil
	default:
		return 0, fmt.Errorf("unknown severity %q", s)
	}
}

type jsonDiagnostic struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
	ID       string `json:"id,omitempty"`
}

func writeJSON(w io.Writer, list derrors.DiagnosticList) error {
	out := make([]jsonDiagnostic, 0, len(list))
	for _, d := range list {
		out = append(out, jsonDiagnostic{
			Severity: d.Severity.String(),
			Message:  d.Message,
			ID:       d.ID,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
