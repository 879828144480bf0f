package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"tauthy/ai"
	"tauthy/domain"
	"tauthy/errors"
	"tauthy/mocks"
	"tauthy/moderation"
	"tauthy/observability"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const aiText = "Furthermore, we delve into the rich tapestry of ideas."

type spaceSegmenter struct{}

func (spaceSegmenter) Segment(text string) []string { return strings.Fields(text) }

type predictionFixture struct {
	svc     *PredictionService
	history *mocks.MockIHistoryRepository
	index   *mocks.MockIHistoryIndex
	opinion *mocks.MockIClient
	monitor *observability.Monitor
}

func newPredictionFixture(t *testing.T, withOpinion, opinionOnSubmit bool) predictionFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelError)

	model, err := ai.NewModelContext(ai.Artifact{
		Version:    "test-1",
		Classes:    []string{ai.LabelAI, ai.LabelHuman},
		Vocabulary: map[string]int{"quick": 0, "brown": 1, "fox": 2, "delve": 3, "tapestry": 4},
		IDF:        []float64{1.2, 1.3, 1.1, 2.0, 2.2},
		Coef:       [][]float64{{0.8, 0.6, 0.9, -2.5, -2.1}},
		Intercept:  []float64{0.1},
	}, ai.Tokenizers{Thai: ai.NewThaiDictionary(spaceSegmenter{}, nil), Latin: ai.WhitespaceSplit{}})
	require.NoError(t, err)

	markers, err := moderation.NewDefaultScanner()
	require.NoError(t, err)

	f := predictionFixture{
		history: mocks.NewMockIHistoryRepository(ctrl),
		index:   mocks.NewMockIHistoryIndex(ctrl),
		opinion: mocks.NewMockIClient(ctrl),
		monitor: observability.NewMonitor(log),
	}
	deps := PredictionDeps{
		Model:   model,
		History: f.history,
		Index:   f.index,
		Markers: markers,
		Monitor: f.monitor,
	}
	if withOpinion {
		deps.Opinion = f.opinion
	}
	f.svc = NewPredictionService(log, deps, opinionOnSubmit)
	f.svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("ICT", 7*3600)) }
	return f
}

func TestPredictionService_Submit(t *testing.T) {
	req := require.New(t)
	f := newPredictionFixture(t, false, false)

	var saved domain.HistoryEntry
	f.history.EXPECT().Save(gomock.Any()).DoAndReturn(func(e domain.HistoryEntry) error {
		saved = e
		return nil
	})
	f.index.EXPECT().
		Index(gomock.Any(), []string{"furthermore", "we", "delve", "into", "the", "rich", "tapestry", "of", "ideas"}).
		Return(nil)

	entry, err := f.svc.Submit(context.Background(), "user-1", aiText)

	req.NoError(err)
	req.Equal(saved, entry)
	req.NotEmpty(entry.ID)
	req.Equal("user-1", entry.UserID)
	req.Equal(domain.SourceText, entry.Source)
	req.Equal(ai.LabelAI, entry.Label)
	req.Equal(entry.AIPercent(), entry.Confidence)
	req.InDelta(100, entry.AIPercent()+entry.HumanPercent(), 1e-9)
	req.Contains(entry.Markers, "delve into")
	req.Contains(entry.Markers, "rich tapestry")
	req.Equal("test-1", entry.ModelVersion)
	req.Equal(time.UTC, entry.CreatedAt.Location())
	req.Nil(entry.Opinion)

	stats := f.monitor.GetLatest()
	req.Equal(uint64(1), stats.Predictions)
	req.Equal(uint64(1), stats.AILabels)
}

func TestPredictionService_SubmitShortTextIsUndecided(t *testing.T) {
	req := require.New(t)
	f := newPredictionFixture(t, false, false)
	f.history.EXPECT().Save(gomock.Any()).Return(nil)
	f.index.EXPECT().Index(gomock.Any(), gomock.Any()).Return(nil)

	entry, err := f.svc.Submit(context.Background(), "user-1", "quick brown fox")

	req.NoError(err)
	req.Equal(ai.LabelUndecided, entry.Label)
	req.Zero(entry.Confidence)
	req.Equal(uint64(1), f.monitor.GetLatest().Undecided)
}

func TestPredictionService_SubmitRejectsBlankText(t *testing.T) {
	f := newPredictionFixture(t, false, false)
	f.history.EXPECT().Save(gomock.Any()).Times(0)

	for _, text := range []string{"", "  \n\t "} {
		_, err := f.svc.Submit(context.Background(), "user-1", text)
		require.ErrorIs(t, err, errors.ErrEmptyText)
	}
}

func TestPredictionService_SubmitFailsWhenSaveFails(t *testing.T) {
	req := require.New(t)
	f := newPredictionFixture(t, false, false)
	f.history.EXPECT().Save(gomock.Any()).Return(fmt.Errorf("disk full"))
	f.index.EXPECT().Index(gomock.Any(), gomock.Any()).Times(0)

	_, err := f.svc.Submit(context.Background(), "user-1", aiText)

	req.ErrorContains(err, "disk full")
	req.Equal(uint64(1), f.monitor.GetLatest().Errors)
}

func TestPredictionService_IndexFailureIsNotFatal(t *testing.T) {
	f := newPredictionFixture(t, false, false)
	f.history.EXPECT().Save(gomock.Any()).Return(nil)
	f.index.EXPECT().Index(gomock.Any(), gomock.Any()).Return(fmt.Errorf("index closed"))

	_, err := f.svc.Submit(context.Background(), "user-1", aiText)
	require.NoError(t, err)
}

func TestPredictionService_OpinionOnSubmit(t *testing.T) {
	t.Run("should attach the opinion", func(t *testing.T) {
		req := require.New(t)
		f := newPredictionFixture(t, true, true)
		op := domain.SecondOpinion{AI: 80, Human: 20, Reason: "stock phrasing", Model: "llama3"}
		f.opinion.EXPECT().Query(gomock.Any(), aiText).Return(op, nil)
		f.history.EXPECT().Save(gomock.Any()).DoAndReturn(func(e domain.HistoryEntry) error {
			req.NotNil(e.Opinion)
			return nil
		})
		f.index.EXPECT().Index(gomock.Any(), gomock.Any()).Return(nil)

		entry, err := f.svc.Submit(context.Background(), "user-1", aiText)

		req.NoError(err)
		req.Equal(&op, entry.Opinion)
	})

	t.Run("should keep the prediction when the backend is down", func(t *testing.T) {
		req := require.New(t)
		f := newPredictionFixture(t, true, true)
		f.opinion.EXPECT().Query(gomock.Any(), gomock.Any()).Return(domain.SecondOpinion{}, errors.ErrOpinionUnavailable)
		f.history.EXPECT().Save(gomock.Any()).Return(nil)
		f.index.EXPECT().Index(gomock.Any(), gomock.Any()).Return(nil)

		entry, err := f.svc.Submit(context.Background(), "user-1", aiText)

		req.NoError(err)
		req.Nil(entry.Opinion)
		req.Equal(ai.LabelAI, entry.Label)
		req.Equal(uint64(1), f.monitor.GetLatest().OpinionFailures)
	})

	t.Run("should not ask when disabled on submit", func(t *testing.T) {
		f := newPredictionFixture(t, true, false)
		f.opinion.EXPECT().Query(gomock.Any(), gomock.Any()).Times(0)
		f.history.EXPECT().Save(gomock.Any()).Return(nil)
		f.index.EXPECT().Index(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.Submit(context.Background(), "user-1", aiText)
		require.NoError(t, err)
	})
}

func TestPredictionService_SubmitDocument(t *testing.T) {
	req := require.New(t)
	f := newPredictionFixture(t, false, false)
	f.history.EXPECT().Save(gomock.Any()).Return(nil)
	f.index.EXPECT().Index(gomock.Any(), gomock.Any()).Return(nil)

	entry, err := f.svc.SubmitDocument(context.Background(), "user-1", "essay.txt", []byte(aiText+"\n"))

	req.NoError(err)
	req.Equal("essay.txt", entry.Source)
	req.Equal(ai.LabelAI, entry.Label)
	req.Equal(uint64(1), f.monitor.GetLatest().Documents)
}

func TestPredictionService_SubmitDocumentRejectsUnknownFormat(t *testing.T) {
	f := newPredictionFixture(t, false, false)
	f.history.EXPECT().Save(gomock.Any()).Times(0)

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	_, err := f.svc.SubmitDocument(context.Background(), "user-1", "pic.png", png)
	require.ErrorIs(t, err, errors.ErrUnsupportedDocument)
}

func TestPredictionService_Reanalyze(t *testing.T) {
	stored := domain.HistoryEntry{ID: "h1", UserID: "user-1", Text: aiText, Label: ai.LabelAI}

	t.Run("should store a fresh opinion", func(t *testing.T) {
		req := require.New(t)
		f := newPredictionFixture(t, true, false)
		op := domain.SecondOpinion{AI: 70, Human: 30, Model: "llama3"}
		f.history.EXPECT().Get("user-1", "h1").Return(stored, nil)
		f.opinion.EXPECT().Query(gomock.Any(), aiText).Return(op, nil)
		f.history.EXPECT().SetOpinion("user-1", "h1", op).Return(nil)

		entry, err := f.svc.Reanalyze(context.Background(), "user-1", "h1")

		req.NoError(err)
		req.Equal(&op, entry.Opinion)
		req.Equal(ai.LabelAI, entry.Label)
	})

	t.Run("should fail without a backend", func(t *testing.T) {
		f := newPredictionFixture(t, false, false)
		f.history.EXPECT().Get("user-1", "h1").Return(stored, nil)

		_, err := f.svc.Reanalyze(context.Background(), "user-1", "h1")
		require.ErrorIs(t, err, errors.ErrOpinionUnavailable)
	})

	t.Run("should not reveal other users' entries", func(t *testing.T) {
		f := newPredictionFixture(t, true, false)
		f.history.EXPECT().Get("user-2", "h1").Return(domain.HistoryEntry{}, errors.ErrNotFound)
		f.opinion.EXPECT().Query(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.svc.Reanalyze(context.Background(), "user-2", "h1")
		require.ErrorIs(t, err, errors.ErrNotFound)
	})

	t.Run("should leave the entry alone when the backend fails", func(t *testing.T) {
		f := newPredictionFixture(t, true, false)
		f.history.EXPECT().Get("user-1", "h1").Return(stored, nil)
		f.opinion.EXPECT().Query(gomock.Any(), gomock.Any()).Return(domain.SecondOpinion{}, errors.ErrOpinionUnavailable)
		f.history.EXPECT().SetOpinion(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := f.svc.Reanalyze(context.Background(), "user-1", "h1")
		require.ErrorIs(t, err, errors.ErrOpinionUnavailable)
	})
}

func TestPredictionService_Feedback(t *testing.T) {
	req := require.New(t)
	f := newPredictionFixture(t, false, false)
	f.history.EXPECT().UpdateFeedback("user-1", "h1", domain.FeedbackHuman).Return(nil)

	req.NoError(f.svc.Feedback("user-1", "h1", " Human "))
	req.ErrorIs(f.svc.Feedback("user-1", "h1", "robot"), errors.ErrInvalidFeedback)
}

func TestPredictionService_History(t *testing.T) {
	req := require.New(t)
	f := newPredictionFixture(t, false, false)
	want := []domain.HistoryEntry{{ID: "h2"}, {ID: "h1"}}
	f.history.EXPECT().ListByUser("user-1", 10).Return(want, nil)

	got, err := f.svc.History("user-1", 10)

	req.NoError(err)
	req.Equal(want, got)
}

func TestPredictionService_Search(t *testing.T) {
	t.Run("should load matching entries and skip stale ids", func(t *testing.T) {
		req := require.New(t)
		f := newPredictionFixture(t, false, false)
		f.index.EXPECT().
			Search(gomock.Any(), "user-1", []string{"rich", "tapestry"}, 0).
			Return([]string{"h1", "gone"}, uint64(2), nil)
		f.history.EXPECT().Get("user-1", "h1").Return(domain.HistoryEntry{ID: "h1"}, nil)
		f.history.EXPECT().Get("user-1", "gone").Return(domain.HistoryEntry{}, errors.ErrNotFound)

		res, err := f.svc.Search(context.Background(), "user-1", "Rich TAPESTRY!", 0)

		req.NoError(err)
		req.Equal(uint64(2), res.Total)
		req.Len(res.Entries, 1)
		req.Equal("h1", res.Entries[0].ID)
	})

	t.Run("should not query the index for an empty query", func(t *testing.T) {
		req := require.New(t)
		f := newPredictionFixture(t, false, false)
		f.index.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		res, err := f.svc.Search(context.Background(), "user-1", " ?! ", 0)

		req.NoError(err)
		req.Empty(res.Entries)
	})
}
