package ai

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// minTermRunes is the shortest term the trainer's analyzer keeps.
const minTermRunes = 2

// Vector is a sparse feature vector. Indices are strictly increasing.
type Vector struct {
	Dim     int
	Indices []int
	Values  []float64
}

// IsZero reports whether the vector carries no weight at all.
func (v Vector) IsZero() bool {
	for _, x := range v.Values {
		if x != 0 {
			return false
		}
	}
	return true
}

// Dot multiplies v with a dense weight row of the same dimension.
func (v Vector) Dot(weights []float64) float64 {
	var sum float64
	for i, idx := range v.Indices {
		sum += v.Values[i] * weights[idx]
	}
	return sum
}

// Vectorizer maps joined tokens onto a TF-IDF vector over a vocabulary fixed when the
// model was trained. It is read-only after construction and safe for concurrent use.
type Vectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

// NewVectorizer checks that every vocabulary index addresses an idf weight.
func NewVectorizer(vocabulary map[string]int, idf []float64) (*Vectorizer, error) {
	if len(idf) == 0 {
		return nil, fmt.Errorf("%w: empty idf table", ErrInvalidModel)
	}
	for term, idx := range vocabulary {
		if idx < 0 || idx >= len(idf) {
			return nil, fmt.Errorf("%w: term %q has index %d outside [0,%d)", ErrDimensionMismatch, term, idx, len(idf))
		}
	}
	for i, w := range idf {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: idf[%d] is %v", ErrInvalidModel, i, w)
		}
	}
	return &Vectorizer{vocabulary: vocabulary, idf: idf}, nil
}

// Dim is the fixed length of every vector this vectorizer produces.
func (v *Vectorizer) Dim() int { return len(v.idf) }

// Vectorize counts known terms, weights them by idf and L2-normalises the result.
// Unknown terms are ignored; an empty or fully unknown input gives the zero vector.
func (v *Vectorizer) Vectorize(joined string) Vector {
	counts := make(map[int]float64)
	for _, term := range Terms(joined) {
		if idx, ok := v.vocabulary[term]; ok {
			counts[idx]++
		}
	}
	out := Vector{Dim: v.Dim()}
	if len(counts) == 0 {
		return out
	}

	out.Indices = make([]int, 0, len(counts))
	for idx := range counts {
		out.Indices = append(out.Indices, idx)
	}
	sort.Ints(out.Indices)

	out.Values = make([]float64, len(out.Indices))
	var norm float64
	for i, idx := range out.Indices {
		w := counts[idx] * v.idf[idx]
		out.Values[i] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range out.Values {
			out.Values[i] /= norm
		}
	}
	return out
}

// Terms splits joined tokens the way the trainer's TfidfVectorizer does with its default
// token_pattern (?u)\b\w\w+\b: maximal runs of letters, digits and underscores, lowercased,
// at least two runes long. Combining marks are not word characters there, so a Thai
// token with vowel signs or tone marks yields the fragments between them.
func Terms(joined string) []string {
	var terms []string
	start := -1
	emit := func(end int) {
		if start < 0 {
			return
		}
		if term := joined[start:end]; utf8.RuneCountInString(term) >= minTermRunes {
			terms = append(terms, strings.ToLower(term))
		}
		start = -1
	}
	for i, r := range joined {
		if isTermRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		emit(i)
	}
	emit(len(joined))
	return terms
}

func isTermRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}
