// Package motif finds pattern occurrences in a sequence.
//
// Patterns go through a Compiler so the regular expression dialect stays
// behind one interface. The default compiler uses Go's RE2 syntax with case
// folding, so constructs such as backreferences or lookaround are reported
// as ErrInvalidPattern.
package motif

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidPattern is returned when a pattern cannot be compiled.
var ErrInvalidPattern = errors.New("invalid motif pattern")

// Match is one occurrence of a pattern.
type Match struct {
	Position int    `json:"position"`
	Text     string `json:"matchedText"`
}

// End is the index just past the match.
func (m Match) End() int { return m.Position + len(m.Text) }

// Matcher scans text for a compiled pattern.
type Matcher interface {
	// FindAll returns non-overlapping, non-empty matches ordered by
	// position. Each scan resumes at the end of the previous match.
	FindAll(text string) []Match
}

// Compiler turns a pattern into a Matcher.
type Compiler interface {
	Compile(pattern string) (Matcher, error)
}

// RegexpCompiler compiles case-insensitive RE2 patterns.
type RegexpCompiler struct{}

// Compile implements Compiler.
func (RegexpCompiler) Compile(pattern string) (Matcher, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
	}
	return regexpMatcher{re: re}, nil
}

type regexpMatcher struct {
	re *regexp.Regexp
}

func (m regexpMatcher) FindAll(text string) []Match {
	matches := []Match{}
	for _, loc := range m.re.FindAllStringIndex(text, -1) {
		if loc[0] == loc[1] {
			continue
		}
		matches = append(matches, Match{Position: loc[0], Text: text[loc[0]:loc[1]]})
	}
	return matches
}

// Searcher runs motif searches with a given Compiler.
type Searcher struct {
	Compiler Compiler
}

// NewSearcher returns a Searcher using c, or RegexpCompiler when c is nil.
func NewSearcher(c Compiler) *Searcher {
	if c == nil {
		c = RegexpCompiler{}
	}
	return &Searcher{Compiler: c}
}

// Find returns all matches of pattern in seq. An empty seq or pattern yields
// no matches and no error; a pattern that does not compile yields an error
// wrapping ErrInvalidPattern.
func (s *Searcher) Find(seq, pattern string) ([]Match, error) {
	if seq == "" || pattern == "" {
		return []Match{}, nil
	}
	m, err := s.Compiler.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return m.FindAll(seq), nil
}

var defaultSearcher = NewSearcher(nil)

// Find searches seq with the default regular expression dialect.
func Find(seq, pattern string) ([]Match, error) {
	return defaultSearcher.Find(seq, pattern)
}

// Covered reports whether pos falls inside any match.
func Covered(matches []Match, pos int) bool {
	for _, m := range matches {
		if pos >= m.Position && pos < m.End() {
			return true
		}
	}
	return false
}

// Coverage marks every position of a length-n sequence that lies inside a
// match. Positions past n are ignored.
func Coverage(matches []Match, n int) []bool {
	out := make([]bool, n)
	for _, m := range matches {
		for i := m.Position; i < m.End() && i < n; i++ {
			if i >= 0 {
				out[i] = true
			}
		}
	}
	return out
}
