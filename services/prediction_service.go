package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"tauthy/ai"
	"tauthy/domain"
	"tauthy/errors"
	"tauthy/ingest"
	"tauthy/moderation"
	"tauthy/observability"
	"tauthy/opinion"
	"tauthy/repositories"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"
)

type IPredictionService interface {
	Submit(ctx context.Context, userID, text string) (domain.HistoryEntry, error)
	SubmitDocument(ctx context.Context, userID, name string, data []byte) (domain.HistoryEntry, error)
	Reanalyze(ctx context.Context, userID, historyID string) (domain.HistoryEntry, error)
	Feedback(userID, historyID, label string) error
	History(userID string, limit int) ([]domain.HistoryEntry, error)
	Search(ctx context.Context, userID, query string, offset int) (SearchResult, error)
}

type SearchResult struct {
	Entries []domain.HistoryEntry
	Total   uint64
}

// PredictionDeps groups the collaborators of PredictionService. Opinion may be nil,
// in which case no second opinion is ever requested.
type PredictionDeps struct {
	Model   *ai.ModelContext
	History repositories.IHistoryRepository
	Index   repositories.IHistoryIndex
	Markers *moderation.Scanner
	Opinion opinion.IClient
	Monitor *observability.Monitor
}

type PredictionService struct {
	log             *slog.Logger
	model           *ai.ModelContext
	history         repositories.IHistoryRepository
	index           repositories.IHistoryIndex
	markers         *moderation.Scanner
	opinion         opinion.IClient
	monitor         *observability.Monitor
	opinionOnSubmit bool
	now             func() time.Time
}

func NewPredictionService(log *slog.Logger, deps PredictionDeps, opinionOnSubmit bool) *PredictionService {
	return &PredictionService{
		log:             log,
		model:           deps.Model,
		history:         deps.History,
		index:           deps.Index,
		markers:         deps.Markers,
		opinion:         deps.Opinion,
		monitor:         deps.Monitor,
		opinionOnSubmit: opinionOnSubmit,
		now:             time.Now,
	}
}

// Submit classifies text, attaches evidence, persists it and indexes it for search.
func (s *PredictionService) Submit(ctx context.Context, userID, text string) (domain.HistoryEntry, error) {
	return s.submit(ctx, userID, text, domain.SourceText)
}

// SubmitDocument extracts the text of an uploaded file and submits it.
func (s *PredictionService) SubmitDocument(ctx context.Context, userID, name string, data []byte) (domain.HistoryEntry, error) {
	doc, err := ingest.ExtractBytes(name, data)
	if err != nil {
		return domain.HistoryEntry{}, err
	}
	s.monitor.IncrDocuments()
	s.log.Debug("Document extracted", "name", name, "mime", doc.MIME, "pages", doc.Pages)
	return s.submit(ctx, userID, doc.Text, name)
}

func (s *PredictionService) submit(ctx context.Context, userID, text, source string) (domain.HistoryEntry, error) {
	if strings.TrimSpace(text) == "" {
		return domain.HistoryEntry{}, errors.ErrEmptyText
	}

	analysis, err := s.model.Analyze(text)
	if err != nil {
		s.monitor.IncrErrors()
		s.log.Error("Classifier failed", "user_id", userID, "model_version", s.model.Version(), "error", err)
		return domain.HistoryEntry{}, err
	}

	p := analysis.Prediction
	entry := domain.HistoryEntry{
		ID:           uuid.NewString(),
		UserID:       userID,
		Text:         text,
		Source:       source,
		Label:        p.Label,
		Confidence:   p.Confidence,
		Details:      p.Details,
		Language:     detectLanguage(text),
		Markers:      s.markers.Phrases(text),
		ModelVersion: s.model.Version(),
		CreatedAt:    s.now().UTC(),
	}

	if s.opinion != nil && s.opinionOnSubmit {
		if op, err := s.opinion.Query(ctx, text); err != nil {
			s.monitor.IncrOpinionFailures()
			s.log.Warn("Second opinion skipped", "user_id", userID, "error", err)
		} else {
			entry.Opinion = &op
		}
	}

	if err := s.history.Save(entry); err != nil {
		s.monitor.IncrErrors()
		return domain.HistoryEntry{}, fmt.Errorf("save history: %w", err)
	}
	if err := s.index.Index(entry, analysis.Tokens); err != nil {
		s.log.Warn("History entry not indexed", "id", entry.ID, "error", err)
	}

	s.monitor.RecordPrediction(entry.ID, entry.Label, entry.Confidence)
	s.log.Info("Prediction stored",
		"id", entry.ID,
		"user_id", userID,
		"label", entry.Label,
		"confidence", entry.Confidence,
		"tokens", len(analysis.Tokens),
		"tokenizer", analysis.Tokenizer,
		"markers", len(entry.Markers))
	return entry, nil
}

// Reanalyze asks for a fresh second opinion on a stored entry and keeps it.
func (s *PredictionService) Reanalyze(ctx context.Context, userID, historyID string) (domain.HistoryEntry, error) {
	entry, err := s.history.Get(userID, historyID)
	if err != nil {
		return domain.HistoryEntry{}, err
	}
	if s.opinion == nil {
		return domain.HistoryEntry{}, fmt.Errorf("%w: no opinion backend configured", errors.ErrOpinionUnavailable)
	}

	op, err := s.opinion.Query(ctx, entry.Text)
	if err != nil {
		s.monitor.IncrOpinionFailures()
		return domain.HistoryEntry{}, err
	}
	if err := s.history.SetOpinion(userID, historyID, op); err != nil {
		return domain.HistoryEntry{}, err
	}
	entry.Opinion = &op
	return entry, nil
}

func (s *PredictionService) Feedback(userID, historyID, label string) error {
	feedback, ok := domain.ParseFeedback(strings.ToLower(strings.TrimSpace(label)))
	if !ok {
		return errors.ErrInvalidFeedback
	}
	if err := s.history.UpdateFeedback(userID, historyID, feedback); err != nil {
		return err
	}
	s.log.Info("Feedback recorded", "id", historyID, "user_id", userID, "feedback", feedback)
	return nil
}

func (s *PredictionService) History(userID string, limit int) ([]domain.HistoryEntry, error) {
	return s.history.ListByUser(userID, limit)
}

// Search tokenizes the query like a submission so Thai queries match Thai entries.
func (s *PredictionService) Search(ctx context.Context, userID, query string, offset int) (SearchResult, error) {
	terms := s.model.Tokens(query)
	if len(terms) == 0 {
		return SearchResult{}, nil
	}

	ids, total, err := s.index.Search(ctx, userID, terms, offset)
	if err != nil {
		return SearchResult{}, err
	}
	entries := make([]domain.HistoryEntry, 0, len(ids))
	for _, id := range ids {
		entry, err := s.history.Get(userID, id)
		if stderrors.Is(err, errors.ErrNotFound) {
			s.log.Warn("Index points at a missing entry", "id", id)
			continue
		}
		if err != nil {
			return SearchResult{}, err
		}
		entries = append(entries, entry)
	}
	return SearchResult{Entries: entries, Total: total}, nil
}

// detectLanguage returns an ISO 639-1 code, or "" when whatlanggo is unsure.
func detectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return ""
	}
	return info.Lang.Iso6391()
}
