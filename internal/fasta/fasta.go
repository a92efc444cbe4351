package fasta

// Package fasta parses the multi-record FASTA text handed to genviz. Parsing
// never fails: text before the first header is dropped and records without
// sequence lines are kept with an empty sequence.

import (
	"errors"
	"io"
	"strings"
)

// Marker starts a header line.
const Marker = '>'

// ErrNoRecord is returned by Select when no record matches the request.
var ErrNoRecord = errors.New("no such record")

// Record represents a single FASTA record (header and sequence).
type Record struct {
	Header   string `json:"header"`
	Sequence string `json:"sequence"`
}

// Len returns the sequence length in bytes.
func (r Record) Len() int { return len(r.Sequence) }

// ParseString splits text into records. Each line is trimmed, so CRLF input
// and indented lines are accepted; sequence lines are upper-cased and joined
// without separators.
func ParseString(text string) []Record {
	records := []Record{}
	var (
		current *Record
		seq     strings.Builder
	)
	flush := func() {
		if current != nil {
			current.Sequence = seq.String()
			records = append(records, *current)
			seq.Reset()
		}
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 0 && line[0] == Marker {
			flush()
			current = &Record{Header: strings.TrimSpace(line[1:])}
			continue
		}
		if current == nil {
			continue
		}
		seq.WriteString(strings.ToUpper(line))
	}
	flush()
	return records
}

// Parse reads all of r and parses it with ParseString. The only error
// returned is the one from reading r.
func Parse(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(string(data)), nil
}

// Select picks a record by header when header is non-empty (exact match
// first, then the first header with that prefix), otherwise by zero-based
// index.
func Select(records []Record, index int, header string) (Record, error) {
	if header != "" {
		for _, r := range records {
			if r.Header == header {
				return r, nil
			}
		}
		for _, r := range records {
			if strings.HasPrefix(r.Header, header) {
				return r, nil
			}
		}
		return Record{}, ErrNoRecord
	}
	if index < 0 || index >= len(records) {
		return Record{}, ErrNoRecord
	}
	return records[index], nil
}
