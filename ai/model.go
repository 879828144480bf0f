package ai

import (
	"fmt"
	"math"
)

// LinearModel is a fitted logistic regression.
//
// With two classes and a single coefficient row the row scores the second class, as
// scikit-learn stores binary models; otherwise there is one row per class and the
// scores go through a softmax.
type LinearModel struct {
	classes   []string
	coef      [][]float64
	intercept []float64
	dim       int
}

func NewLinearModel(classes []string, coef [][]float64, intercept []float64) (*LinearModel, error) {
	if len(classes) < 2 {
		return nil, fmt.Errorf("%w: need at least two classes, got %d", ErrInvalidModel, len(classes))
	}
	seen := make(map[string]struct{}, len(classes))
	for _, c := range classes {
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("%w: duplicate class %q", ErrInvalidModel, c)
		}
		seen[c] = struct{}{}
	}

	rows := len(classes)
	if rows == 2 {
		rows = 1
	}
	if len(coef) != rows && !(len(classes) == 2 && len(coef) == 2) {
		return nil, fmt.Errorf("%w: %d coefficient rows for %d classes", ErrDimensionMismatch, len(coef), len(classes))
	}
	if len(intercept) != len(coef) {
		return nil, fmt.Errorf("%w: %d intercepts for %d coefficient rows", ErrDimensionMismatch, len(intercept), len(coef))
	}

	dim := len(coef[0])
	for i, row := range coef {
		if len(row) != dim {
			return nil, fmt.Errorf("%w: coefficient row %d has %d weights, want %d", ErrDimensionMismatch, i, len(row), dim)
		}
		for j, w := range row {
			if !isFinite(w) {
				return nil, fmt.Errorf("%w: coef[%d][%d] is %v", ErrInvalidModel, i, j, w)
			}
		}
		if !isFinite(intercept[i]) {
			return nil, fmt.Errorf("%w: intercept[%d] is %v", ErrInvalidModel, i, intercept[i])
		}
	}
	return &LinearModel{classes: classes, coef: coef, intercept: intercept, dim: dim}, nil
}

// Classes returns the trained labels in model order.
func (m *LinearModel) Classes() []string {
	out := make([]string, len(m.classes))
	copy(out, m.classes)
	return out
}

// Dim is the feature dimension the model was fitted on.
func (m *LinearModel) Dim() int { return m.dim }

// PredictProbabilities scores v and returns one probability per trained class.
func (m *LinearModel) PredictProbabilities(v Vector) (map[string]float64, error) {
	if v.Dim != m.dim {
		return nil, fmt.Errorf("%w: vector has %d features, model expects %d", ErrDimensionMismatch, v.Dim, m.dim)
	}

	scores := make([]float64, len(m.coef))
	for i, row := range m.coef {
		scores[i] = v.Dot(row) + m.intercept[i]
	}

	probs := make(map[string]float64, len(m.classes))
	if len(m.coef) == 1 {
		p := sigmoid(scores[0])
		probs[m.classes[0]] = 1 - p
		probs[m.classes[1]] = p
	} else {
		for i, p := range softmax(scores) {
			probs[m.classes[i]] = p
		}
	}

	for label, p := range probs {
		if !isFinite(p) {
			return nil, fmt.Errorf("%w: %s=%v", ErrNonFiniteProbability, label, p)
		}
	}
	return probs, nil
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}

func softmax(scores []float64) []float64 {
	peak := math.Inf(-1)
	for _, s := range scores {
		peak = math.Max(peak, s)
	}
	out := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		out[i] = math.Exp(s - peak)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
