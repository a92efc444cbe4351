package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"genviz/internal/export"
	"genviz/internal/fasta"
	"genviz/internal/motif"
)

const sampleFasta = ">seq1 first\nATGCGTACGTTAG\n>seq2\nATGATG\nNNGG\n"

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.fasta")
	if err := os.WriteFile(path, []byte(sampleFasta), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.json"), "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRecordsCommand(t *testing.T) {
	out, err := run(t, "records", writeSample(t))
	if err != nil {
		t.Fatalf("records failed: %v", err)
	}
	want := "0\t13\tseq1 first\n1\t10\tseq2\n"
	if out != want {
		t.Fatalf("unexpected output:\n%q\nwant\n%q", out, want)
	}
}

func TestAnalyzeSingleToStdout(t *testing.T) {
	out, err := run(t, "analyze", writeSample(t), "--motif", "atg")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	var doc export.Document
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not a document: %v\n%s", err, out)
	}
	if doc.Sequence.Header != "seq1 first" || doc.Analysis.Length != 13 {
		t.Fatalf("unexpected document: %+v", doc)
	}
	if doc.Analysis.GCPercent != 46.15 || doc.Analysis.MolecularWeight != 4225 {
		t.Fatalf("unexpected stats: %+v", doc.Analysis)
	}
	if len(doc.Motifs) != 1 || doc.Motifs[0] != (motif.Match{Position: 0, Text: "ATG"}) {
		t.Fatalf("unexpected motifs: %+v", doc.Motifs)
	}
}

func TestAnalyzeByHeader(t *testing.T) {
	out, err := run(t, "analyze", writeSample(t), "--header", "seq2")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	var doc export.Document
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if doc.Sequence.Sequence != "ATGATGNNGG" {
		t.Fatalf("wrong record selected: %+v", doc.Sequence)
	}
	if doc.Analysis.Composition[4].Count != 2 {
		t.Fatalf("expected 2 unknown bases, got %+v", doc.Analysis.Composition)
	}
}

func TestAnalyzeAllToFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.json")
	stdout, err := run(t, "analyze", writeSample(t), "--all", "--out", outPath, "--concurrency", "2")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if stdout != "" {
		t.Fatalf("expected nothing on stdout, got %q", stdout)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var docs []export.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(docs) != 2 || docs[0].Sequence.Header != "seq1 first" || docs[1].Sequence.Header != "seq2" {
		t.Fatalf("unexpected documents: %+v", docs)
	}
	for _, d := range docs {
		if len(d.Analysis.Frames) != 6 {
			t.Fatalf("expected 6 frames, got %d", len(d.Analysis.Frames))
		}
	}
}

func TestAnalyzeDryRunWritesNothing(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.json")
	if _, err := run(t, "analyze", writeSample(t), "--out", outPath, "--dry-run"); err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Fatalf("dry-run should not create %s", outPath)
	}
}

func TestAnalyzeMissingRecord(t *testing.T) {
	_, err := run(t, "analyze", writeSample(t), "--index", "5")
	if !errors.Is(err, fasta.ErrNoRecord) {
		t.Fatalf("expected ErrNoRecord, got %v", err)
	}
}

func TestAnalyzeInvalidMotif(t *testing.T) {
	_, err := run(t, "analyze", writeSample(t), "--motif", "(")
	if !errors.Is(err, motif.ErrInvalidPattern) {
		t.Fatalf("expected ErrInvalidPattern, got %v", err)
	}
}

func TestAnalyzeNoInput(t *testing.T) {
	_, err := run(t, "analyze")
	if !errors.Is(err, errNoInput) {
		t.Fatalf("expected errNoInput, got %v", err)
	}
}

func TestMotifCommand(t *testing.T) {
	out, err := run(t, "motif", writeSample(t), "ATG", "--index", "1")
	if err != nil {
		t.Fatalf("motif failed: %v", err)
	}
	if out != "0\tATG\n3\tATG\n" {
		t.Fatalf("unexpected output: %q", out)
	}

	out, err = run(t, "motif", writeSample(t), "ATG", "--index", "1", "--json")
	if err != nil {
		t.Fatalf("motif --json failed: %v", err)
	}
	var matches []motif.Match
	if err := json.Unmarshal([]byte(out), &matches); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(matches) != 2 || matches[1].Position != 3 {
		t.Fatalf("unexpected matches: %+v", matches)
	}
	if !strings.Contains(out, `"matchedText": "ATG"`) {
		t.Fatalf("expected matchedText field, got %s", out)
	}
}

func TestMotifInvalidPattern(t *testing.T) {
	_, err := run(t, "motif", writeSample(t), "(")
	if !errors.Is(err, motif.ErrInvalidPattern) {
		t.Fatalf("expected ErrInvalidPattern, got %v", err)
	}
}

func TestReadRecordsFromStdin(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(sampleFasta))
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.json"), "--log-level", "error", "records", "-"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("records - failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "0\t13\tseq1 first\n") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestAnalyzeAllRejectsSingleRecordFlags(t *testing.T) {
	path := writeSample(t)
	for _, extra := range [][]string{{"--index", "1"}, {"--auto-name"}, {"--header", "seq2"}} {
		args := append([]string{"analyze", path, "--all", "--dry-run"}, extra...)
		if _, err := run(t, args...); err == nil {
			t.Fatalf("expected --all with %v to fail", extra)
		}
	}
}

func TestRecordsCommandPrintsParsedHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "padded.fasta")
	if err := os.WriteFile(path, []byte(">  padded id  \r\nACGT\r\n"), 0o644); err != nil {
		t.Fatalf("write fasta: %v", err)
	}
	out, err := run(t, "records", path)
	if err != nil {
		t.Fatalf("records failed: %v", err)
	}
	if out != "0\t4\tpadded id\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}
