package ai

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

const (
	LabelAI        = "ai"
	LabelHuman     = "human"
	LabelUndecided = "undecided"
)

// DefaultMinTokens is the smallest cleaned token count that gets classified.
const DefaultMinTokens = 5

// hundredths of a percent in 100%
const fullScale = 10000

// Prediction is the outcome of one classification. Details holds percentages with two
// decimals that add up to exactly 100, or is empty when the label is undecided.
type Prediction struct {
	Label      string             `json:"label"`
	Confidence float64            `json:"confidence"`
	Details    map[string]float64 `json:"details"`
}

// Undecided is the answer for text too short to carry signal.
func Undecided() Prediction {
	return Prediction{Label: LabelUndecided, Confidence: 0, Details: map[string]float64{}}
}

// IsUndecided reports whether the classifier declined to decide.
func (p Prediction) IsUndecided() bool { return p.Label == LabelUndecided }

// Finalize turns raw class probabilities into a Prediction.
//
// Below minTokens whitespace tokens the raw probabilities are ignored and the result is
// undecided. Otherwise they are rescaled to sum to one, rounded to hundredths of a
// percent, and whatever rounding lost or gained is given to the leading class so the
// details add up to 100.00. Ties between classes go to the lexicographically first label.
func Finalize(cleaned string, raw map[string]float64, minTokens int) (Prediction, error) {
	if len(strings.Fields(cleaned)) < minTokens {
		return Undecided(), nil
	}
	if len(raw) == 0 {
		return Prediction{}, fmt.Errorf("%w: no class probabilities", ErrNonFiniteProbability)
	}

	labels := sortedLabels(raw)
	var total float64
	for _, label := range labels {
		p := raw[label]
		if !isFinite(p) || p < 0 {
			return Prediction{}, fmt.Errorf("%w: %s=%v", ErrNonFiniteProbability, label, p)
		}
		total += p
	}
	if !isFinite(total) || total <= 0 {
		return Prediction{}, fmt.Errorf("%w: probabilities sum to %v", ErrNonFiniteProbability, total)
	}

	units := make(map[string]int64, len(labels))
	var sum int64
	for _, label := range labels {
		u := int64(math.Round(raw[label] / total * fullScale))
		units[label] = u
		sum += u
	}
	units[argMax(labels, units)] += fullScale - sum

	top := argMax(labels, units)
	details := make(map[string]float64, len(labels))
	for _, label := range labels {
		details[label] = float64(units[label]) / 100
	}
	return Prediction{Label: top, Confidence: details[top], Details: details}, nil
}

// argMax walks labels in sorted order and keeps the first strictly larger value.
func argMax(labels []string, units map[string]int64) string {
	best := labels[0]
	for _, label := range labels[1:] {
		if units[label] > units[best] {
			best = label
		}
	}
	return best
}

func sortedLabels(m map[string]float64) []string {
	labels := make([]string, 0, len(m))
	for label := range m {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
