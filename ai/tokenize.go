package ai

import (
	"strings"
	"unicode/utf8"
)

// asciiPunctuation is the set of single-character tokens the whitespace strategy drops.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Tokenizer turns cleaned text into a filtered token sequence.
// Order and duplicates are preserved.
type Tokenizer interface {
	Tokenize(cleaned string) []string
	Name() string
}

// Segmenter breaks unspaced text into dictionary words. *WordCutter satisfies it.
type Segmenter interface {
	Segment(text string) []string
}

// WhitespaceSplit is the strategy for Latin-based text.
type WhitespaceSplit struct{}

func (WhitespaceSplit) Name() string { return "whitespace" }

// Tokenize splits on whitespace and drops tokens that are exactly one punctuation
// character. Tokens that merely contain punctuation are kept.
func (WhitespaceSplit) Tokenize(cleaned string) []string {
	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) == 1 && strings.Contains(asciiPunctuation, f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// ThaiDictionary segments with a dictionary maximal-matching word cutter and removes
// stopwords and single-character fragments.
type ThaiDictionary struct {
	segmenter Segmenter
	stopwords map[string]struct{}
}

func NewThaiDictionary(segmenter Segmenter, stopwords map[string]struct{}) ThaiDictionary {
	return ThaiDictionary{segmenter: segmenter, stopwords: stopwords}
}

// NewDefaultThaiDictionary uses the embedded word list and stopword list.
func NewDefaultThaiDictionary() (ThaiDictionary, error) {
	cutter, err := DefaultWordCutter()
	if err != nil {
		return ThaiDictionary{}, err
	}
	return NewThaiDictionary(cutter, ThaiStopwords()), nil
}

// NewThaiDictionaryFromFile loads a word-per-line dictionary instead of the embedded one.
func NewThaiDictionaryFromFile(path string) (ThaiDictionary, error) {
	cutter, err := LoadWordCutter(path)
	if err != nil {
		return ThaiDictionary{}, err
	}
	return NewThaiDictionary(cutter, ThaiStopwords()), nil
}

func (ThaiDictionary) Name() string { return "thai-dictionary" }

func (t ThaiDictionary) Tokenize(cleaned string) []string {
	segments := t.segmenter.Segment(cleaned)
	tokens := make([]string, 0, len(segments))
	for _, s := range segments {
		if _, stop := t.stopwords[s]; stop {
			continue
		}
		if utf8.RuneCountInString(strings.TrimSpace(s)) <= 1 {
			continue
		}
		tokens = append(tokens, s)
	}
	return tokens
}

// Tokenizers holds one strategy per script. The script is decided once per text.
type Tokenizers struct {
	Thai  Tokenizer
	Latin Tokenizer
}

// DefaultTokenizers wires the bundled Thai dictionary and whitespace splitting.
func DefaultTokenizers() (Tokenizers, error) {
	thai, err := NewDefaultThaiDictionary()
	if err != nil {
		return Tokenizers{}, err
	}
	return Tokenizers{Thai: thai, Latin: WhitespaceSplit{}}, nil
}

// LoadTokenizers is DefaultTokenizers with an optional custom Thai dictionary file.
func LoadTokenizers(thaiDictPath string) (Tokenizers, error) {
	if thaiDictPath == "" {
		return DefaultTokenizers()
	}
	thai, err := NewThaiDictionaryFromFile(thaiDictPath)
	if err != nil {
		return Tokenizers{}, err
	}
	return Tokenizers{Thai: thai, Latin: WhitespaceSplit{}}, nil
}

// For picks the strategy for a cleaned text.
func (t Tokenizers) For(cleaned string) Tokenizer {
	return t.pick(IsThai(cleaned))
}

// Tokenize runs the strategy chosen by the caller's script decision.
func (t Tokenizers) Tokenize(cleaned string, thai bool) []string {
	return t.pick(thai).Tokenize(cleaned)
}

func (t Tokenizers) pick(thai bool) Tokenizer {
	if thai {
		return t.Thai
	}
	return t.Latin
}
