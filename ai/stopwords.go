package ai

import (
	_ "embed"
	"strings"
)

//go:embed stopwords_th.txt
var thaiStopwordsRaw string

var thaiStopwords = parseWordList(thaiStopwordsRaw)

// ThaiStopwords returns a copy of the embedded Thai stopword set.
func ThaiStopwords() map[string]struct{} {
	out := make(map[string]struct{}, len(thaiStopwords))
	for w := range thaiStopwords {
		out[w] = struct{}{}
	}
	return out
}

func parseWordList(raw string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words[line] = struct{}{}
	}
	return words
}
