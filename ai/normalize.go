package ai

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// maxNormalizePasses bounds the fixpoint loop in Normalize. Real input settles in two passes.
const maxNormalizePasses = 8

var (
	urlPattern   = regexp.MustCompile(`(?i)http\S+`)
	digitPattern = regexp.MustCompile(`\p{Nd}+`)
)

const (
	thaiSaraE  = '\u0E40'
	thaiSaraAe = '\u0E41'
)

// Normalize cleans raw text before tokenization: canonical Unicode form, no URLs,
// no digit runs, no punctuation or symbols, single spaces, lowercase.
//
// Each cleaning step can expose new material for an earlier one ("ht.tp" becomes "http"
// once the dot is gone), so the pass is repeated until the output stops changing.
// The result is therefore stable: Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	current := text
	for i := 0; i < maxNormalizePasses; i++ {
		next := normalizePass(current)
		if next == current {
			break
		}
		current = next
	}
	return current
}

func normalizePass(text string) string {
	text = norm.NFC.String(strings.TrimSpace(text))
	text = normalizeThai(text)
	text = urlPattern.ReplaceAllString(text, "")
	text = digitPattern.ReplaceAllString(text, "")
	text = strings.Map(keepWordOrSpace, text)
	text = strings.Join(strings.Fields(text), " ")
	return strings.ToLower(text)
}

// keepWordOrSpace drops every rune that is neither a word character nor whitespace.
// Combining marks count as word characters: Thai vowels and tone marks are marks.
// Zero-width joiners and other format characters are dropped here too.
func keepWordOrSpace(r rune) rune {
	switch {
	case unicode.IsLetter(r), unicode.IsMark(r), unicode.IsNumber(r), r == '_':
		return r
	case unicode.IsSpace(r):
		return r
	default:
		return -1
	}
}

// normalizeThai folds the usual Thai typing artefacts: two SARA E typed for SARA AE,
// and the same tone mark or above/below vowel typed twice in a row.
func normalizeThai(text string) string {
	if !IsThai(text) {
		return text
	}
	runes := []rune(text)
	out := make([]rune, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == thaiSaraE && i+1 < len(runes) && runes[i+1] == thaiSaraE {
			out = append(out, thaiSaraAe)
			i++
			continue
		}
		if isThaiCombining(r) && len(out) > 0 && out[len(out)-1] == r {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

func isThaiCombining(r rune) bool {
	return r == '\u0E31' || (r >= '\u0E34' && r <= '\u0E3A') || (r >= '\u0E47' && r <= '\u0E4E')
}
