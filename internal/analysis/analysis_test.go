package analysis

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genviz/internal/composition"
	"genviz/internal/fasta"
)

func TestAnalyze(t *testing.T) {
	rec := fasta.ParseString(">seq1\nATGCGTACGTTAG\n")[0]
	res := Analyze(rec)

	assert.Equal(t, 13, res.Length)
	assert.Equal(t, 46.15, res.GCPercent)
	assert.Equal(t, []composition.Entry{
		{Base: "A", Count: 3}, {Base: "T", Count: 4}, {Base: "G", Count: 4},
		{Base: "C", Count: 2}, {Base: "N", Count: 0},
	}, res.Composition)
	require.Len(t, res.Frames, 6)
	assert.Equal(t, "MRTL", res.Frames[0].Protein)
	assert.Equal(t, 4225.0, res.MolecularWeight)
	require.Len(t, res.TopCodons, 4)
	assert.Equal(t, "ATG", res.TopCodons[0].Codon)
}

func TestAnalyzeEmpty(t *testing.T) {
	res := Analyze(fasta.Record{Header: "empty"})
	assert.Equal(t, 0, res.Length)
	assert.Equal(t, 0.0, res.GCPercent)
	assert.Equal(t, 0.0, res.MolecularWeight)
	require.Len(t, res.Composition, 5)
	require.Len(t, res.Frames, 6)
	for _, f := range res.Frames {
		assert.Empty(t, f.Protein)
	}
	assert.NotNil(t, res.TopCodons)
	assert.Empty(t, res.TopCodons)
}

func TestAnalyzeDoesNotMutate(t *testing.T) {
	rec := fasta.Record{Header: "h", Sequence: "ATGNNN"}
	_ = Analyze(rec)
	assert.Equal(t, fasta.Record{Header: "h", Sequence: "ATGNNN"}, rec)
}

func TestAnalyzeAllKeepsOrder(t *testing.T) {
	var records []fasta.Record
	for i := 0; i < 50; i++ {
		records = append(records, fasta.Record{
			Header:   fmt.Sprintf("r%d", i),
			Sequence: strings.Repeat("A", i),
		})
	}
	results, err := AnalyzeAll(context.Background(), records, 4)
	require.NoError(t, err)
	require.Len(t, results, len(records))
	for i, r := range results {
		assert.Equal(t, i, r.Length)
		assert.Equal(t, Analyze(records[i]), r)
	}
}

func TestAnalyzeAllEmpty(t *testing.T) {
	results, err := AnalyzeAll(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestAnalyzeAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	records := make([]fasta.Record, 100)
	_, err := AnalyzeAll(ctx, records, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMolecularWeight(t *testing.T) {
	assert.Equal(t, 325.0, MolecularWeight(1))
	assert.Equal(t, 0.0, MolecularWeight(0))
}
