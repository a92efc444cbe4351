package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"genviz/internal/analysis"
	"genviz/internal/export"
	"genviz/internal/fasta"
	"genviz/internal/motif"
)

type analyzeFlags struct {
	index    int
	header   string
	all      bool
	pattern  string
	out      string
	autoName bool
	dryRun   bool
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var f analyzeFlags
	cmd := &cobra.Command{
		Use:   "analyze [fasta]",
		Short: "Analyze one or all records and write the JSON export",
		Long: `Analyze one or all records and write the JSON export

The export holds the record, its analysis (length, gcPercent, composition,
frames, topCodons, molecularWeight) and the motif matches for --motif.

Codon usage only counts frame +1 triplets of the forward strand; it is not
derived from the six reading frames.

The document goes to stdout unless --out, --auto-name or output_json in the
config name a file. --all writes a JSON array with one document per record.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAnalyze(cmd.Context(), cmd.OutOrStdout(), args, f)
		},
	}

	cmd.Flags().IntVarP(&f.index, "index", "i", 0, "zero-based index of the record to analyze")
	cmd.Flags().StringVar(&f.header, "header", "", "analyze the record with this header (or header prefix)")
	cmd.Flags().BoolVarP(&f.all, "all", "a", false, "analyze every record")
	cmd.Flags().StringVarP(&f.pattern, "motif", "m", "", "motif pattern to search for (case-insensitive regexp)")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "output JSON file path")
	cmd.Flags().BoolVar(&f.autoName, "auto-name", false, "name the output file analysis_<header>.json (single record only)")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "analyze but do not write the output")
	cmd.Flags().Int("concurrency", 0, "number of workers for --all (default: number of CPUs)")
	cmd.MarkFlagsMutuallyExclusive("all", "header")
	cmd.MarkFlagsMutuallyExclusive("all", "index")
	cmd.MarkFlagsMutuallyExclusive("all", "auto-name")
	cmd.MarkFlagsMutuallyExclusive("out", "auto-name")

	_ = a.v.BindPFlag("concurrency", cmd.Flags().Lookup("concurrency"))
	return cmd
}

func (a *app) runAnalyze(ctx context.Context, stdout io.Writer, args []string, f analyzeFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	path, err := a.inputPath(args)
	if err != nil {
		return err
	}
	records, err := a.readRecords(path)
	if err != nil {
		return err
	}

	if !f.all {
		rec, err := selectRecord(records, f.index, f.header)
		if err != nil {
			return err
		}
		records = []fasta.Record{rec}
	}

	start := time.Now()
	results, err := analysis.AnalyzeAll(ctx, records, a.cfg.Concurrency)
	if err != nil {
		return err
	}
	a.logger.Debug("analysis finished", "records", len(results), "duration_ms", time.Since(start).Milliseconds())

	docs := make([]export.Document, 0, len(records))
	for i, rec := range records {
		var matches []motif.Match
		if f.pattern != "" {
			matches, err = motif.Find(rec.Sequence, f.pattern)
			if err != nil {
				return err
			}
			a.logger.Info("motif search", "header", rec.Header, "pattern", f.pattern, "matches", len(matches))
		}
		docs = append(docs, export.New(rec, results[i], matches))
	}

	outPath := f.out
	if f.autoName && len(docs) > 0 {
		outPath = export.FileName(docs[0].Sequence.Header)
	}
	if outPath == "" {
		outPath = a.cfg.OutputJSON
	}

	if f.dryRun {
		a.logger.Info("dry-run: would write output JSON", "path", outPath, "records", len(docs))
		return nil
	}

	w, toFile := stdout, false
	if outPath != "" && outPath != "-" {
		file, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		defer file.Close()
		w, toFile = file, true
	}
	if f.all {
		err = export.WriteAll(w, docs)
	} else {
		err = export.Write(w, docs[0])
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if toFile {
		a.logger.Info("wrote output JSON", "path", outPath, "records", len(docs))
	}
	return nil
}
