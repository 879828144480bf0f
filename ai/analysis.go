package ai

import (
	"fmt"
	"strings"
)

// Analysis is a Prediction together with what the pipeline saw on the way.
type Analysis struct {
	Cleaned    string
	Tokens     []string
	Script     Script
	Tokenizer  string
	Prediction Prediction
}

// ModelContext is the loaded model plus the tokenizers and decision policy.
// It is immutable once built and shared by concurrent callers without locking.
type ModelContext struct {
	version    string
	vectorizer *Vectorizer
	model      *LinearModel
	tokenizers Tokenizers
	minTokens  int
}

type Option func(*ModelContext)

// WithMinTokens changes the low-signal threshold.
func WithMinTokens(n int) Option {
	return func(m *ModelContext) {
		if n > 0 {
			m.minTokens = n
		}
	}
}

// NewModelContext validates the artifact and runs the model once with the zero
// vector, so a broken artifact fails here instead of on the first request.
func NewModelContext(a Artifact, tokenizers Tokenizers, opts ...Option) (*ModelContext, error) {
	if tokenizers.Thai == nil || tokenizers.Latin == nil {
		return nil, fmt.Errorf("both thai and latin tokenizers are required")
	}
	vectorizer, model, err := a.Build()
	if err != nil {
		return nil, err
	}
	if _, err := model.PredictProbabilities(vectorizer.Vectorize("")); err != nil {
		return nil, fmt.Errorf("model self-check: %w", err)
	}

	m := &ModelContext{
		version:    a.Version,
		vectorizer: vectorizer,
		model:      model,
		tokenizers: tokenizers,
		minTokens:  DefaultMinTokens,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// LoadModelContext reads the artifact at path and builds a context from it.
func LoadModelContext(path string, tokenizers Tokenizers, opts ...Option) (*ModelContext, error) {
	a, err := LoadArtifact(path)
	if err != nil {
		return nil, err
	}
	return NewModelContext(a, tokenizers, opts...)
}

func (m *ModelContext) Version() string { return m.version }

func (m *ModelContext) MinTokens() int { return m.minTokens }

func (m *ModelContext) Classes() []string { return m.model.Classes() }

// Predict classifies raw text.
func (m *ModelContext) Predict(text string) (Prediction, error) {
	a, err := m.Analyze(text)
	if err != nil {
		return Prediction{}, err
	}
	return a.Prediction, nil
}

// Analyze runs the whole pipeline. Short input never reaches the classifier.
// An error here is always a model configuration problem, never a property of text.
func (m *ModelContext) Analyze(text string) (Analysis, error) {
	analysis := m.tokenize(text)
	cleaned := analysis.Cleaned
	if len(strings.Fields(cleaned)) < m.minTokens {
		analysis.Prediction = Undecided()
		return analysis, nil
	}

	raw, err := m.model.PredictProbabilities(m.vectorizer.Vectorize(cleaned))
	if err != nil {
		return Analysis{}, err
	}
	prediction, err := Finalize(cleaned, raw, m.minTokens)
	if err != nil {
		return Analysis{}, err
	}
	analysis.Prediction = prediction
	return analysis, nil
}

// Tokens runs only the cleaning and tokenizing stages, for callers that need the same
// view of a text as the classifier (search terms, for instance).
func (m *ModelContext) Tokens(text string) []string {
	return m.tokenize(text).Tokens
}

func (m *ModelContext) tokenize(text string) Analysis {
	normalized := Normalize(text)
	script := DetectScript(normalized)
	tokenizer := m.tokenizers.pick(script == ScriptThai)
	tokens := tokenizer.Tokenize(normalized)
	return Analysis{
		Cleaned:   strings.Join(tokens, " "),
		Tokens:    tokens,
		Script:    script,
		Tokenizer: tokenizer.Name(),
	}
}
