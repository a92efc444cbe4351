// Package analysis assembles the full statistics for one sequence record.
package analysis

import (
	"context"
	"runtime"
	"sync"

	"genviz/internal/composition"
	"genviz/internal/fasta"
	"genviz/internal/translator"
)

// NucleotideWeight is the average mass of one nucleotide in Daltons. The
// molecular weight reported by Analyze is length*NucleotideWeight, an
// approximation rather than a chemical computation.
const NucleotideWeight = 325.0

// Result holds everything computed for one record.
type Result struct {
	Length          int                     `json:"length"`
	GCPercent       float64                 `json:"gcPercent"`
	Composition     []composition.Entry     `json:"composition"`
	Frames          []translator.Frame      `json:"frames"`
	TopCodons       []translator.CodonCount `json:"topCodons"`
	MolecularWeight float64                 `json:"molecularWeight"`
}

// Analyze computes composition, GC content, the six reading frames, frame +1
// codon usage and the approximate molecular weight of rec.
func Analyze(rec fasta.Record) Result {
	seq := rec.Sequence
	return Result{
		Length:          len(seq),
		GCPercent:       composition.GCPercent(seq),
		Composition:     composition.Count(seq),
		Frames:          translator.SixFrame(seq),
		TopCodons:       translator.CodonUsage(seq),
		MolecularWeight: MolecularWeight(len(seq)),
	}
}

// MolecularWeight returns the approximate weight of n nucleotides rounded to
// two decimals.
func MolecularWeight(n int) float64 {
	return composition.Round2(float64(n) * NucleotideWeight)
}

// AnalyzeAll analyzes records with up to workers goroutines and returns the
// results in input order. workers <= 0 means runtime.NumCPU(). If ctx is
// cancelled before all records are done, ctx.Err() is returned.
func AnalyzeAll(ctx context.Context, records []fasta.Record, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(records) {
		workers = len(records)
	}
	results := make([]Result, len(records))
	if len(records) == 0 {
		return results, nil
	}

	tasks := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range tasks {
				results[idx] = Analyze(records[idx])
			}
		}()
	}

	var err error
dispatch:
	for i := range records {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break dispatch
		case tasks <- i:
		}
	}
	close(tasks)
	wg.Wait()
	if err != nil {
		return nil, err
	}
	return results, nil
}
