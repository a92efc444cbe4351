// Package export builds the JSON document written for an analyzed record.
package export

import (
	"encoding/json"
	"io"
	"strings"

	"genviz/internal/analysis"
	"genviz/internal/fasta"
	"genviz/internal/motif"
)

// maxNameHeader is how many header characters go into FileName.
const maxNameHeader = 20

// Document is the export payload: the record, its analysis and any motif
// matches found in it.
type Document struct {
	Sequence fasta.Record    `json:"sequence"`
	Analysis analysis.Result `json:"analysis"`
	Motifs   []motif.Match   `json:"motifs"`
}

// New bundles rec, res and matches. A nil matches becomes an empty list so
// the document always carries "motifs": [].
func New(rec fasta.Record, res analysis.Result, matches []motif.Match) Document {
	if matches == nil {
		matches = []motif.Match{}
	}
	return Document{Sequence: rec, Analysis: res, Motifs: matches}
}

func encodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Write writes doc as indented JSON.
func Write(w io.Writer, doc Document) error {
	return encodePretty(w, doc)
}

// WriteAll writes docs as one indented JSON array.
func WriteAll(w io.Writer, docs []Document) error {
	if docs == nil {
		docs = []Document{}
	}
	return encodePretty(w, docs)
}

// FileName returns "analysis_<header prefix>.json" where the prefix is the
// first 20 characters of header with path separators and other characters
// that are awkward in file names replaced by '_'.
func FileName(header string) string {
	runes := []rune(strings.TrimSpace(header))
	if len(runes) > maxNameHeader {
		runes = runes[:maxNameHeader]
	}
	for i, r := range runes {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', 0:
			runes[i] = '_'
		}
	}
	name := string(runes)
	if name == "" {
		name = "sequence"
	}
	return "analysis_" + name + ".json"
}
