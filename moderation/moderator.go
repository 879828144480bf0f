package moderation

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"tauthy/ai"

	goahocorasick "github.com/anknown/ahocorasick"
)

//go:embed markers.txt
var defaultMarkers string

// Marker is one stock phrase found in a text. Pos is the rune offset in the normalized text.
type Marker struct {
	Phrase string
	Pos    int
}

// Scanner finds stock LLM phrases with a single Aho-Corasick pass.
// Matches are evidence shown next to a prediction; they never change it.
type Scanner struct {
	matcher *goahocorasick.Machine
}

// NewScanner builds the automaton from phrases normalized the same way input text is.
func NewScanner(phrases []string) (*Scanner, error) {
	seen := make(map[string]struct{}, len(phrases))
	patterns := make([][]rune, 0, len(phrases))
	for _, phrase := range phrases {
		normalized := ai.Normalize(phrase)
		if normalized == "" {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		patterns = append(patterns, []rune(normalized))
	}
	if len(patterns) == 0 {
		return &Scanner{}, nil
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, fmt.Errorf("build marker automaton: %w", err)
	}
	return &Scanner{matcher: m}, nil
}

// NewDefaultScanner uses the embedded phrase list.
func NewDefaultScanner() (*Scanner, error) {
	return NewScanner(parsePhrases(defaultMarkers))
}

// Scan reports every whole-word occurrence, ordered by position.
func (s *Scanner) Scan(text string) []Marker {
	if s.matcher == nil {
		return nil
	}
	normalized := []rune(ai.Normalize(text))
	if len(normalized) == 0 {
		return nil
	}

	var markers []Marker
	for _, term := range s.matcher.MultiPatternSearch(normalized, false) {
		end := term.Pos + len(term.Word)
		if !isBoundary(normalized, term.Pos-1) || !isBoundary(normalized, end) {
			continue
		}
		markers = append(markers, Marker{Phrase: string(term.Word), Pos: term.Pos})
	}
	sort.SliceStable(markers, func(i, j int) bool {
		if markers[i].Pos != markers[j].Pos {
			return markers[i].Pos < markers[j].Pos
		}
		return markers[i].Phrase < markers[j].Phrase
	})
	return markers
}

// Phrases returns the distinct phrases found, in order of first appearance.
func (s *Scanner) Phrases(text string) []string {
	var phrases []string
	seen := map[string]struct{}{}
	for _, m := range s.Scan(text) {
		if _, ok := seen[m.Phrase]; ok {
			continue
		}
		seen[m.Phrase] = struct{}{}
		phrases = append(phrases, m.Phrase)
	}
	return phrases
}

// isBoundary is true outside the text or on the single space Normalize leaves between words.
func isBoundary(text []rune, i int) bool {
	return i < 0 || i >= len(text) || text[i] == ' '
}

func parsePhrases(raw string) []string {
	var phrases []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		phrases = append(phrases, line)
	}
	return phrases
}
