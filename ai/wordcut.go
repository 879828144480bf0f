package ai

import (
	_ "embed"
	"fmt"
	"os"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

//go:embed dict_th.txt
var thaiDictionaryRaw string

// SARA E through SARA AI MAIMALAI are written before the consonant they follow in speech.
const (
	thaiLeadingVowelFirst = '\u0E40'
	thaiLeadingVowelLast  = '\u0E44'
)

// WordCutter segments unspaced Thai by dictionary maximal matching. Of all the ways to
// cut a run into dictionary words it keeps the one leaving the fewest runes unmatched,
// then the one with the fewest words. Adjacent unmatched clusters become one token and
// runs of non-Thai letters or digits stay whole. Whitespace only separates.
//
// The automaton is read-only after construction, so one WordCutter serves any number
// of goroutines.
type WordCutter struct {
	matcher *goahocorasick.Machine
}

// NewWordCutter builds the matcher from a word list. Blank and duplicate words are skipped.
func NewWordCutter(words []string) (*WordCutter, error) {
	seen := make(map[string]struct{}, len(words))
	patterns := make([][]rune, 0, len(words))
	for _, w := range words {
		w = Normalize(w)
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		patterns = append(patterns, []rune(w))
	}
	if len(patterns) == 0 {
		return &WordCutter{}, nil
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, fmt.Errorf("build thai dictionary automaton: %w", err)
	}
	return &WordCutter{matcher: m}, nil
}

// DefaultWordCutter uses the embedded word list plus the Thai stopwords.
func DefaultWordCutter() (*WordCutter, error) {
	return NewWordCutter(dictionaryWords(thaiDictionaryRaw))
}

// LoadWordCutter reads a word-per-line file ('#' starts a comment) and adds the Thai
// stopwords so that they are still cut out and filtered.
func LoadWordCutter(path string) (*WordCutter, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read thai dictionary %s: %w", path, err)
	}
	return NewWordCutter(dictionaryWords(string(raw)))
}

func dictionaryWords(raw string) []string {
	words := make([]string, 0, len(thaiStopwords))
	for w := range parseWordList(raw) {
		words = append(words, w)
	}
	for w := range thaiStopwords {
		words = append(words, w)
	}
	return words
}

type cutKind int

const (
	cutSpace cutKind = iota
	cutKnown
	cutUnknown
)

type cutStep struct {
	reached bool
	unknown int
	words   int
	from    int
	kind    cutKind
}

func (s cutStep) betterThan(o cutStep) bool {
	if !o.reached {
		return true
	}
	if s.unknown != o.unknown {
		return s.unknown < o.unknown
	}
	return s.words < o.words
}

// Segment cuts text into words. The concatenation of the result equals text with its
// whitespace removed.
func (w *WordCutter) Segment(text string) []string {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return nil
	}

	ends := make(map[int][]int)
	if w.matcher != nil {
		for _, term := range w.matcher.MultiPatternSearch(runes, false) {
			ends[term.Pos] = append(ends[term.Pos], term.Pos+len(term.Word))
		}
	}

	best := make([]cutStep, n+1)
	best[0] = cutStep{reached: true}
	relax := func(from, to, unknown, words int, kind cutKind) {
		cand := cutStep{reached: true, unknown: unknown, words: words, from: from, kind: kind}
		if cand.betterThan(best[to]) {
			best[to] = cand
		}
	}
	for i := 0; i < n; i++ {
		cur := best[i]
		if !cur.reached {
			continue
		}
		switch r := runes[i]; {
		case unicode.IsSpace(r):
			relax(i, i+1, cur.unknown, cur.words, cutSpace)
		case !isThaiRune(r):
			j := i + 1
			for j < n && !unicode.IsSpace(runes[j]) && !isThaiRune(runes[j]) {
				j++
			}
			relax(i, j, cur.unknown, cur.words+1, cutKnown)
		default:
			for _, j := range ends[i] {
				relax(i, j, cur.unknown, cur.words+1, cutKnown)
			}
			j := clusterEnd(runes, i)
			relax(i, j, cur.unknown+j-i, cur.words+1, cutUnknown)
		}
	}

	var steps []cutStep
	var bounds [][2]int
	for to := n; to > 0; to = best[to].from {
		steps = append(steps, best[to])
		bounds = append(bounds, [2]int{best[to].from, to})
	}

	var tokens []string
	pendingFrom := -1
	flush := func(to int) {
		if pendingFrom >= 0 {
			tokens = append(tokens, string(runes[pendingFrom:to]))
			pendingFrom = -1
		}
	}
	for k := len(steps) - 1; k >= 0; k-- {
		from, to := bounds[k][0], bounds[k][1]
		switch steps[k].kind {
		case cutUnknown:
			if pendingFrom < 0 {
				pendingFrom = from
			}
			if k == 0 || steps[k-1].kind != cutUnknown {
				flush(to)
			}
		case cutKnown:
			tokens = append(tokens, string(runes[from:to]))
		}
	}
	return tokens
}

// clusterEnd keeps a leading vowel with its consonant and marks with their base rune,
// so an unmatched stretch is never cut through the middle of a syllable cluster.
func clusterEnd(runes []rune, i int) int {
	j := i + 1
	if runes[i] >= thaiLeadingVowelFirst && runes[i] <= thaiLeadingVowelLast && j < len(runes) && isThaiRune(runes[j]) {
		j++
	}
	for j < len(runes) && unicode.Is(unicode.Mn, runes[j]) {
		j++
	}
	return j
}

func isThaiRune(r rune) bool { return r >= thaiBlockStart && r <= thaiBlockEnd }
