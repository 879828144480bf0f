package ai

import (
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Artifact is the persisted output of the trainer: the fitted TF-IDF vocabulary and the
// logistic regression weights. JSON is what the trainer exports; gob is accepted for
// faster loading of large vocabularies.
type Artifact struct {
	Version    string         `json:"version"`
	Classes    []string       `json:"classes"`
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
	Coef       [][]float64    `json:"coef"`
	Intercept  []float64      `json:"intercept"`
}

// LoadArtifact reads a model artifact, choosing the decoder from the file extension.
func LoadArtifact(path string) (Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return Artifact{}, fmt.Errorf("open model artifact: %w", err)
	}
	defer f.Close()

	var a Artifact
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gob":
		if err := gob.NewDecoder(f).Decode(&a); err != nil {
			return Artifact{}, fmt.Errorf("decode gob artifact: %w", err)
		}
	default:
		if err := json.NewDecoder(f).Decode(&a); err != nil {
			return Artifact{}, fmt.Errorf("decode json artifact: %w", err)
		}
	}
	return a, nil
}

// SaveGob writes the artifact in gob form at path.
func SaveGob(a Artifact, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create gob artifact: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(a); err != nil {
		return fmt.Errorf("encode gob artifact: %w", err)
	}
	return nil
}

// Build turns the artifact into its two runtime halves and checks they agree.
func (a Artifact) Build() (*Vectorizer, *LinearModel, error) {
	vectorizer, err := NewVectorizer(a.Vocabulary, a.IDF)
	if err != nil {
		return nil, nil, err
	}
	model, err := NewLinearModel(a.Classes, a.Coef, a.Intercept)
	if err != nil {
		return nil, nil, err
	}
	if vectorizer.Dim() != model.Dim() {
		return nil, nil, fmt.Errorf("%w: vocabulary has %d features, model expects %d", ErrDimensionMismatch, vectorizer.Dim(), model.Dim())
	}
	return vectorizer, model, nil
}
