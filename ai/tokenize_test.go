package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingSegmenter splits on spaces and remembers what it was asked to segment.
type recordingSegmenter struct {
	calls []string
	words map[string][]string
}

func (s *recordingSegmenter) Segment(text string) []string {
	s.calls = append(s.calls, text)
	var out []string
	for i, chunk := range strings.Split(text, " ") {
		if i > 0 {
			out = append(out, " ")
		}
		if parts, ok := s.words[chunk]; ok {
			out = append(out, parts...)
			continue
		}
		out = append(out, chunk)
	}
	return out
}

func TestWhitespaceSplit_Tokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"plain words", "the quick brown fox", []string{"the", "quick", "brown", "fox"}},
		{"duplicates and order survive", "b a b a", []string{"b", "a", "b", "a"}},
		{"lone punctuation is dropped", "a - b _ c", []string{"a", "b", "c"}},
		{"punctuation inside a token survives", "rock-n-roll e.g. x_y", []string{"rock-n-roll", "e.g.", "x_y"}},
		{"single letters survive", "a i o", []string{"a", "i", "o"}},
		{"empty", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, WhitespaceSplit{}.Tokenize(tt.input))
		})
	}
}

func TestThaiDictionary_FiltersStopwordsAndShortTokens(t *testing.T) {
	req := require.New(t)
	seg := &recordingSegmenter{words: map[string][]string{
		"สวัสดีครับ":    {"สวัสดี", "ครับ"},
		"วันนี้อากาศดีมาก": {"วันนี้", "อากาศ", "ดี", "มาก"},
	}}
	tok := NewThaiDictionary(seg, map[string]struct{}{"ครับ": {}, "มาก": {}})

	tokens := tok.Tokenize("สวัสดีครับ วันนี้อากาศดีมาก")

	req.Equal([]string{"สวัสดี", "วันนี้", "อากาศ", "ดี"}, tokens)
	req.Len(seg.calls, 1)
}

func TestThaiDictionary_DropsSingleRuneTokens(t *testing.T) {
	seg := &recordingSegmenter{words: map[string][]string{"กขคำ": {"ก", "ข", "คำ"}}}
	tok := NewThaiDictionary(seg, nil)

	require.Equal(t, []string{"คำ"}, tok.Tokenize("กขคำ"))
}

func TestTokenizers_RoutesByScript(t *testing.T) {
	req := require.New(t)
	seg := &recordingSegmenter{}
	tokenizers := Tokenizers{Thai: NewThaiDictionary(seg, nil), Latin: WhitespaceSplit{}}

	text := Normalize("สวัสดีครับ วันนี้อากาศดีมาก")
	req.Equal("thai-dictionary", tokenizers.For(text).Name())
	tokenizers.Tokenize(text, IsThai(text))
	req.Equal([]string{text}, seg.calls)

	req.Equal("whitespace", tokenizers.For("plain latin text").Name())
	req.Equal("thai-dictionary", tokenizers.For("mostly latin with one ก").Name())
}

func TestDefaultThaiDictionary_SegmentsWithoutSpaces(t *testing.T) {
	req := require.New(t)
	tok, err := NewDefaultThaiDictionary()
	req.NoError(err)

	tokens := tok.Tokenize(Normalize("สวัสดีครับ วันนี้อากาศดีมาก"))

	req.NotEmpty(tokens)
	req.Contains(tokens, "อากาศ")
	stop := ThaiStopwords()
	for _, token := range tokens {
		req.NotContains(token, " ")
		_, isStop := stop[token]
		req.False(isStop, "stopword %q leaked", token)
	}
}

func TestThaiStopwords_ReturnsCopy(t *testing.T) {
	req := require.New(t)
	first := ThaiStopwords()
	req.Contains(first, "ครับ")
	delete(first, "ครับ")
	req.Contains(ThaiStopwords(), "ครับ")
}
