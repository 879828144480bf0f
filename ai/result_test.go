package ai

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

const fiveTokens = "one two three four five"

func TestFinalize_ShortTextIsUndecided(t *testing.T) {
	tests := []struct {
		name    string
		cleaned string
		raw     map[string]float64
	}{
		{"empty", "", map[string]float64{LabelAI: 0.9, LabelHuman: 0.1}},
		{"four tokens", "one two three four", map[string]float64{LabelAI: 0.2, LabelHuman: 0.8}},
		{"raw is ignored", "ai", map[string]float64{LabelAI: math.NaN()}},
		{"no raw at all", "a b", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			p, err := Finalize(tt.cleaned, tt.raw, DefaultMinTokens)
			req.NoError(err)
			req.Equal(LabelUndecided, p.Label)
			req.Zero(p.Confidence)
			req.Empty(p.Details)
			req.True(p.IsUndecided())
		})
	}
}

func TestFinalize_ResidualGoesToLeadingClass(t *testing.T) {
	req := require.New(t)

	p, err := Finalize(fiveTokens, map[string]float64{LabelAI: 0.333333, LabelHuman: 0.666667}, DefaultMinTokens)

	req.NoError(err)
	req.Equal(map[string]float64{LabelAI: 33.33, LabelHuman: 66.67}, p.Details)
	req.Equal(LabelHuman, p.Label)
	req.Equal(66.67, p.Confidence)
}

func TestFinalize_ThreeWayTieBreaksOnLabel(t *testing.T) {
	req := require.New(t)

	p, err := Finalize(fiveTokens, map[string]float64{"c": 1.0 / 3, "b": 1.0 / 3, "a": 1.0 / 3}, DefaultMinTokens)

	req.NoError(err)
	req.Equal(map[string]float64{"a": 33.34, "b": 33.33, "c": 33.33}, p.Details)
	req.Equal("a", p.Label)
	req.Equal(33.34, p.Confidence)
}

func TestFinalize_EvenSplit(t *testing.T) {
	p, err := Finalize(fiveTokens, map[string]float64{LabelHuman: 0.5, LabelAI: 0.5}, DefaultMinTokens)
	require.NoError(t, err)
	require.Equal(t, LabelAI, p.Label)
	require.Equal(t, 50.0, p.Confidence)
}

func TestFinalize_RescalesUnnormalizedInput(t *testing.T) {
	p, err := Finalize(fiveTokens, map[string]float64{LabelAI: 2, LabelHuman: 6}, DefaultMinTokens)
	require.NoError(t, err)
	require.Equal(t, map[string]float64{LabelAI: 25, LabelHuman: 75}, p.Details)
	require.Equal(t, LabelHuman, p.Label)
}

func TestFinalize_RejectsBadProbabilities(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]float64
	}{
		{"empty", map[string]float64{}},
		{"nan", map[string]float64{LabelAI: math.NaN(), LabelHuman: 0.5}},
		{"inf", map[string]float64{LabelAI: math.Inf(1), LabelHuman: 0.5}},
		{"negative", map[string]float64{LabelAI: -0.1, LabelHuman: 1.1}},
		{"all zero", map[string]float64{LabelAI: 0, LabelHuman: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Finalize(fiveTokens, tt.raw, DefaultMinTokens)
			require.ErrorIs(t, err, ErrNonFiniteProbability)
		})
	}
}

func TestFinalize_DetailsAlwaysSumToHundred(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	labels := []string{"a", "b", "c", "d", "e"}

	for i := 0; i < 2000; i++ {
		n := 2 + rng.Intn(len(labels)-1)
		raw := make(map[string]float64, n)
		for _, label := range labels[:n] {
			raw[label] = rng.Float64()
		}
		raw[labels[0]] += 1e-9

		p, err := Finalize(fiveTokens, raw, DefaultMinTokens)
		require.NoError(t, err)

		var units int64
		for label, value := range p.Details {
			scaled := value * 100
			require.InDelta(t, math.Round(scaled), scaled, 1e-6, "%s=%v not two decimals", label, value)
			units += int64(math.Round(scaled))
			require.LessOrEqual(t, value, p.Confidence)
		}
		require.Equal(t, int64(fullScale), units, "raw=%v details=%v", raw, p.Details)
		require.Equal(t, p.Details[p.Label], p.Confidence)
	}
}
