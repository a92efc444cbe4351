package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"genviz/internal/config"
	"genviz/internal/fasta"
	"genviz/internal/logging"
)

// version is the program version. It can be overridden at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

// errNoInput is returned when neither an argument nor input_fasta names a file.
var errNoInput = errors.New("no input FASTA given (pass a path or set input_fasta)")

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v          *viper.Viper
	cfg        *config.Config
	logger     *log.Logger
	closeLog   func()
	configPath string
	verbose    bool
	stdin      io.Reader
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New(), closeLog: func() {}, stdin: os.Stdin}

	root := &cobra.Command{
		Use:   "genviz",
		Short: "Analyze nucleotide sequences from FASTA files",
		Long: `Analyze nucleotide sequences from FASTA files

genviz reads multi-record FASTA text and reports, per record, the base
composition, GC content, the six-frame protein translation, the ten most
used frame +1 codons and an approximate molecular weight. Motifs can be
searched with case-insensitive regular expressions.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) { a.closeLog() },
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "path to config.json (optional)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-file", "", "append logs to this file as well as stderr")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose (debug) logging")

	_ = a.v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log_file", flags.Lookup("log-file"))

	root.AddCommand(newRecordsCmd(a), newAnalyzeCmd(a), newMotifCmd(a))
	return root
}

// setup loads the config and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg
	a.stdin = cmd.InOrStdin()
	a.logger, a.closeLog = logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Verbose: a.verbose,
		File:    cfg.LogFile,
	})
	a.logger.Debug("loaded config", "input_fasta", cfg.InputFasta, "output_json", cfg.OutputJSON, "log_file", cfg.LogFile, "log_level", cfg.LogLevel, "concurrency", cfg.Concurrency)
	return nil
}

// inputPath resolves the FASTA path from the positional args or the config.
func (a *app) inputPath(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if a.cfg != nil && a.cfg.InputFasta != "" {
		return a.cfg.InputFasta, nil
	}
	return "", errNoInput
}

// readRecords parses the FASTA file at path; "-" reads stdin.
func (a *app) readRecords(path string) ([]fasta.Record, error) {
	var r io.Reader = a.stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	records, err := fasta.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	a.logger.Info("parsed fasta", "path", path, "records", len(records))
	return records, nil
}

// selectRecord wraps fasta.Select with a message naming what was asked for.
func selectRecord(records []fasta.Record, index int, header string) (fasta.Record, error) {
	rec, err := fasta.Select(records, index, header)
	if err != nil {
		if header != "" {
			return rec, fmt.Errorf("header %q: %w", header, err)
		}
		return rec, fmt.Errorf("index %d of %d records: %w", index, len(records), err)
	}
	return rec, nil
}

func newRecordsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "records [fasta]",
		Short: "List the records of a FASTA file",
		Long: `List the records of a FASTA file

One line is printed per record: its zero-based index, sequence length and
header, separated by tabs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.inputPath(args)
			if err != nil {
				return err
			}
			records, err := a.readRecords(path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, r := range records {
				fmt.Fprintf(out, "%d\t%d\t%s\n", i, r.Len(), r.Header)
			}
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
