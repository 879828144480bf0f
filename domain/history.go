package domain

import (
	"time"

	"tauthy/ai"
)

// Feedback is the user's own verdict on a past prediction.
type Feedback string

const (
	FeedbackNone  Feedback = ""
	FeedbackAI    Feedback = "ai"
	FeedbackHuman Feedback = "human"
)

// ParseFeedback accepts exactly "ai" or "human".
func ParseFeedback(s string) (Feedback, bool) {
	switch Feedback(s) {
	case FeedbackAI, FeedbackHuman:
		return Feedback(s), true
	default:
		return FeedbackNone, false
	}
}

// SecondOpinion is what a local LLM thought of the same text.
type SecondOpinion struct {
	AI        float64
	Human     float64
	Reason    string
	Model     string
	CreatedAt time.Time
}

// HistoryEntry is one persisted submission.
type HistoryEntry struct {
	ID           string
	UserID       string
	Text         string
	Source       string
	Label        string
	Confidence   float64
	Details      map[string]float64
	Language     string
	Markers      []string
	Opinion      *SecondOpinion
	Feedback     Feedback
	ModelVersion string
	CreatedAt    time.Time
}

// Prediction rebuilds the classifier result stored on the entry.
func (h HistoryEntry) Prediction() ai.Prediction {
	details := make(map[string]float64, len(h.Details))
	for k, v := range h.Details {
		details[k] = v
	}
	return ai.Prediction{Label: h.Label, Confidence: h.Confidence, Details: details}
}

func (h HistoryEntry) AIPercent() float64 { return h.Details[ai.LabelAI] }

func (h HistoryEntry) HumanPercent() float64 { return h.Details[ai.LabelHuman] }

// SourceText marks entries submitted as typed text rather than a document.
const SourceText = "text"
