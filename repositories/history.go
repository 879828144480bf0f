//go:generate go run go.uber.org/mock/mockgen -source=history.go -destination=../mocks/mock_history_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"slices"

	"tauthy/domain"
	"tauthy/errors"
	pb "tauthy/proto/tauthy/v1"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type IHistoryRepository interface {
	Save(entry domain.HistoryEntry) error
	Get(userID, id string) (domain.HistoryEntry, error)
	// ListByUser returns the user's entries newest first; limit <= 0 means all.
	ListByUser(userID string, limit int) ([]domain.HistoryEntry, error)
	UpdateFeedback(userID, id string, feedback domain.Feedback) error
	SetOpinion(userID, id string, opinion domain.SecondOpinion) error
}

type HistoryRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewHistoryRepository(db *badger.DB, log *slog.Logger) *HistoryRepository {
	return &HistoryRepository{db: db, log: log}
}

func historyPrefix(userID string) string { return fmt.Sprintf("history:%s:", userID) }

// historyKey is "history:{user}:{unix_nano padded to 19}:{id}" so that keys of one user
// sort chronologically and two entries in the same nanosecond still get distinct keys.
func historyKey(entry domain.HistoryEntry) []byte {
	return []byte(fmt.Sprintf("%s%019d:%s", historyPrefix(entry.UserID), entry.CreatedAt.UnixNano(), entry.ID))
}

func historyIDKey(id string) []byte { return []byte("hid:" + id) }

func (h *HistoryRepository) Save(entry domain.HistoryEntry) error {
	data, err := proto.Marshal(toPbHistoryEntry(entry))
	if err != nil {
		return fmt.Errorf("marshal history entry: %w", err)
	}
	key := historyKey(entry)
	return h.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key, data); err != nil {
			return err
		}
		return txn.Set(historyIDKey(entry.ID), key)
	})
}

func (h *HistoryRepository) Get(userID, id string) (domain.HistoryEntry, error) {
	var entry domain.HistoryEntry
	err := h.db.View(func(txn *badger.Txn) error {
		var err error
		entry, _, err = readEntry(txn, userID, id)
		return err
	})
	return entry, err
}

func (h *HistoryRepository) ListByUser(userID string, limit int) ([]domain.HistoryEntry, error) {
	var entries []domain.HistoryEntry
	err := h.db.View(func(txn *badger.Txn) error {
		prefix := []byte(historyPrefix(userID))
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// in reverse mode Seek lands on the last key <= seek key
		seekKey := append(append([]byte{}, prefix...), 0xFF)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(entries) == limit {
				h.log.Debug("History limit reached", "user_id", userID, "limit", limit)
				break
			}
			var entryPb pb.HistoryEntry
			err := it.Item().Value(func(val []byte) error {
				return proto.Unmarshal(val, &entryPb)
			})
			if err != nil {
				return err
			}
			entries = append(entries, toHistoryEntry(&entryPb))
		}
		return nil
	})
	return entries, err
}

func (h *HistoryRepository) UpdateFeedback(userID, id string, feedback domain.Feedback) error {
	return h.modify(userID, id, func(entry *domain.HistoryEntry) {
		entry.Feedback = feedback
	})
}

func (h *HistoryRepository) SetOpinion(userID, id string, opinion domain.SecondOpinion) error {
	return h.modify(userID, id, func(entry *domain.HistoryEntry) {
		entry.Opinion = &opinion
	})
}

func (h *HistoryRepository) modify(userID, id string, change func(*domain.HistoryEntry)) error {
	return h.db.Update(func(txn *badger.Txn) error {
		entry, key, err := readEntry(txn, userID, id)
		if err != nil {
			return err
		}
		change(&entry)
		data, err := proto.Marshal(toPbHistoryEntry(entry))
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// readEntry resolves the id index and refuses entries owned by another user.
func readEntry(txn *badger.Txn, userID, id string) (domain.HistoryEntry, []byte, error) {
	key, err := getValue(txn, historyIDKey(id))
	if err != nil {
		return domain.HistoryEntry{}, nil, err
	}
	data, err := getValue(txn, key)
	if err != nil {
		return domain.HistoryEntry{}, nil, err
	}
	var entryPb pb.HistoryEntry
	if err := proto.Unmarshal(data, &entryPb); err != nil {
		return domain.HistoryEntry{}, nil, fmt.Errorf("unmarshal history entry %s: %w", id, err)
	}
	if entryPb.UserId != userID {
		return domain.HistoryEntry{}, nil, errors.ErrNotFound
	}
	return toHistoryEntry(&entryPb), key, nil
}

// toPbHistoryEntry writes details sorted by label so equal entries encode to equal bytes.
func toPbHistoryEntry(entry domain.HistoryEntry) *pb.HistoryEntry {
	labels := lo.Keys(entry.Details)
	slices.Sort(labels)
	entryPb := &pb.HistoryEntry{
		Id:         entry.ID,
		UserId:     entry.UserID,
		Text:       entry.Text,
		Source:     entry.Source,
		Label:      entry.Label,
		Confidence: entry.Confidence,
		Details: lo.Map(labels, func(label string, _ int) *pb.ClassScore {
			return &pb.ClassScore{Label: label, Percent: entry.Details[label]}
		}),
		Language:     entry.Language,
		Markers:      entry.Markers,
		Feedback:     string(entry.Feedback),
		ModelVersion: entry.ModelVersion,
		CreatedAt:    timestamppb.New(entry.CreatedAt),
	}
	if entry.Opinion != nil {
		entryPb.Opinion = &pb.SecondOpinion{
			Ai:        entry.Opinion.AI,
			Human:     entry.Opinion.Human,
			Reason:    entry.Opinion.Reason,
			Model:     entry.Opinion.Model,
			CreatedAt: timestamppb.New(entry.Opinion.CreatedAt),
		}
	}
	return entryPb
}

func toHistoryEntry(entryPb *pb.HistoryEntry) domain.HistoryEntry {
	entry := domain.HistoryEntry{
		ID:         entryPb.Id,
		UserID:     entryPb.UserId,
		Text:       entryPb.Text,
		Source:     entryPb.Source,
		Label:      entryPb.Label,
		Confidence: entryPb.Confidence,
		Details: lo.SliceToMap(entryPb.Details, func(s *pb.ClassScore) (string, float64) {
			return s.Label, s.Percent
		}),
		Language:     entryPb.Language,
		Markers:      entryPb.Markers,
		Feedback:     domain.Feedback(entryPb.Feedback),
		ModelVersion: entryPb.ModelVersion,
		CreatedAt:    entryPb.CreatedAt.AsTime(),
	}
	if op := entryPb.Opinion; op != nil {
		entry.Opinion = &domain.SecondOpinion{
			AI:        op.Ai,
			Human:     op.Human,
			Reason:    op.Reason,
			Model:     op.Model,
			CreatedAt: op.CreatedAt.AsTime(),
		}
	}
	return entry
}
