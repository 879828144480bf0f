//go:generate go run go.uber.org/mock/mockgen -source=search.go -destination=../mocks/mock_history_index.go -package=mocks
package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"tauthy/domain"

	"github.com/blugelabs/bluge"
	"github.com/blugelabs/bluge/analysis"
	"github.com/blugelabs/bluge/analysis/tokenizer"
)

const (
	fieldUserID = "user_id"
	fieldTokens = "tokens"
	fieldText   = "text"
)

// tokensAnalyzer keeps tokens exactly as the classifier pipeline produced them.
var tokensAnalyzer = &analysis.Analyzer{Tokenizer: tokenizer.NewWhitespaceTokenizer()}

// IHistoryIndex is the full-text side of the history store. It only keeps ids;
// entries themselves are read back from IHistoryRepository.
type IHistoryIndex interface {
	Index(entry domain.HistoryEntry, tokens []string) error
	// Search returns matching entry ids for one user, best match first, and the total hit count.
	Search(ctx context.Context, userID string, terms []string, offset int) ([]string, uint64, error)
	Close() error
}

type HistoryIndex struct {
	writer   *bluge.Writer
	log      *slog.Logger
	pageSize int
}

func NewHistoryIndex(path string, log *slog.Logger, pageSize int) (*HistoryIndex, error) {
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	return &HistoryIndex{writer: writer, log: log, pageSize: pageSize}, nil
}

// Index stores the tokenizer output next to the raw text. Thai has no spaces, so
// matching on the pipeline's tokens is what makes Thai entries findable.
func (h *HistoryIndex) Index(entry domain.HistoryEntry, tokens []string) error {
	doc := bluge.NewDocument(entry.ID).
		AddField(bluge.NewKeywordField(fieldUserID, entry.UserID)).
		AddField(bluge.NewTextField(fieldTokens, strings.Join(tokens, " ")).WithAnalyzer(tokensAnalyzer)).
		AddField(bluge.NewTextField(fieldText, entry.Text))
	return h.writer.Update(doc.ID(), doc)
}

func (h *HistoryIndex) Search(ctx context.Context, userID string, terms []string, offset int) ([]string, uint64, error) {
	query := strings.TrimSpace(strings.Join(terms, " "))
	if query == "" {
		return nil, 0, nil
	}

	reader, err := h.writer.Reader()
	if err != nil {
		return nil, 0, fmt.Errorf("open bluge reader: %w", err)
	}
	defer func() { _ = reader.Close() }()

	q := bluge.NewBooleanQuery().
		AddMust(bluge.NewTermQuery(userID).SetField(fieldUserID)).
		AddMust(bluge.NewBooleanQuery().
			SetMinShould(1).
			AddShould(bluge.NewMatchQuery(query).SetField(fieldTokens).SetAnalyzer(tokensAnalyzer)).
			AddShould(bluge.NewMatchQuery(query).SetField(fieldText)))

	request := bluge.NewTopNSearch(h.pageSize, q).SetFrom(offset).WithStandardAggregations()
	matches, err := reader.Search(ctx, request)
	if err != nil {
		return nil, 0, fmt.Errorf("search history: %w", err)
	}

	var ids []string
	match, err := matches.Next()
	for err == nil && match != nil {
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				ids = append(ids, string(value))
				return false
			}
			return true
		})
		if err != nil {
			break
		}
		match, err = matches.Next()
	}
	if err != nil {
		return nil, 0, err
	}
	total := matches.Aggregations().Count()
	h.log.Debug("History search", "user_id", userID, "hits", total, "offset", offset)
	return ids, total, nil
}

func (h *HistoryIndex) Close() error {
	return h.writer.Close()
}
