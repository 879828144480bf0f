package ai

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVectorizer_Vectorize(t *testing.T) {
	req := require.New(t)
	v, err := NewVectorizer(map[string]int{"fox": 2, "dog": 4, "cat": 0}, []float64{1, 1, 1, 1, 2})
	req.NoError(err)

	vec := v.Vectorize("fox fox dog unknown")

	req.Equal(5, vec.Dim)
	req.Equal([]int{2, 4}, vec.Indices)
	req.InDelta(1/math.Sqrt2, vec.Values[0], 1e-12)
	req.InDelta(1/math.Sqrt2, vec.Values[1], 1e-12)
}

func TestVectorizer_OutOfVocabularyGivesZeroVector(t *testing.T) {
	req := require.New(t)
	v, err := NewVectorizer(map[string]int{"known": 0}, []float64{1.5})
	req.NoError(err)

	for _, input := range []string{"", "   ", "never seen words", "unknown unknown"} {
		vec := v.Vectorize(input)
		req.True(vec.IsZero(), "input=%q", input)
		req.Equal(1, vec.Dim)
		req.Empty(vec.Indices)
	}
}

func TestVectorizer_IsDeterministic(t *testing.T) {
	req := require.New(t)
	v, err := NewVectorizer(map[string]int{"aa": 0, "bb": 1, "cc": 2, "dd": 3}, []float64{1, 2, 3, 4})
	req.NoError(err)

	first := v.Vectorize("dd cc bb aa aa")
	req.Equal([]int{0, 1, 2, 3}, first.Indices)
	for i := 0; i < 20; i++ {
		req.Equal(first, v.Vectorize("dd cc bb aa aa"))
	}
}

func TestNewVectorizer_RejectsBrokenTables(t *testing.T) {
	req := require.New(t)

	_, err := NewVectorizer(map[string]int{"a": 0}, nil)
	req.ErrorIs(err, ErrInvalidModel)

	_, err = NewVectorizer(map[string]int{"a": 3}, []float64{1, 1})
	req.ErrorIs(err, ErrDimensionMismatch)

	_, err = NewVectorizer(map[string]int{"a": 0}, []float64{math.NaN()})
	req.ErrorIs(err, ErrInvalidModel)
}

func TestVector_Dot(t *testing.T) {
	vec := Vector{Dim: 3, Indices: []int{0, 2}, Values: []float64{0.5, 2}}
	require.InDelta(t, 0.5*4+2*-1, vec.Dot([]float64{4, 100, -1}), 1e-12)
}

func TestTerms(t *testing.T) {
	tests := []struct {
		name   string
		joined string
		want   []string
	}{
		{"drops single runes", "hello, world a b_c x9 ab", []string{"hello", "world", "b_c", "x9", "ab"}},
		{"lowercases", "Quick BROWN", []string{"quick", "brown"}},
		// vowel signs and tone marks are not word characters, as in Python's \w
		{"thai marks split terms", "สวัสดี ครับ วันนี้ อากาศ ดี มาก", []string{"สว", "สด", "คร", "นน", "อากาศ", "มาก"}},
		{"empty", "", nil},
		{"punctuation only", "... !!", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Terms(tt.joined))
		})
	}
}

// fitVocabulary indexes terms in order of first appearance, like fitting the trainer's
// vectorizer on the same joined tokens.
func fitVocabulary(docs ...string) map[string]int {
	vocabulary := map[string]int{}
	for _, doc := range docs {
		for _, term := range Terms(doc) {
			if _, ok := vocabulary[term]; !ok {
				vocabulary[term] = len(vocabulary)
			}
		}
	}
	return vocabulary
}

func TestVectorizer_MatchesThaiTermsOfTheTrainedVocabulary(t *testing.T) {
	req := require.New(t)
	joined := "สวัสดี ครับ วันนี้ อากาศ ดี มาก"
	vocabulary := fitVocabulary(joined)
	req.Equal(map[string]int{"สว": 0, "สด": 1, "คร": 2, "นน": 3, "อากาศ": 4, "มาก": 5}, vocabulary)

	idf := []float64{1, 1, 1, 1, 1, 1}
	v, err := NewVectorizer(vocabulary, idf)
	req.NoError(err)

	vec := v.Vectorize(joined)
	req.Equal([]int{0, 1, 2, 3, 4, 5}, vec.Indices)
	for _, x := range vec.Values {
		req.InDelta(1/math.Sqrt(6), x, 1e-12)
	}
}
