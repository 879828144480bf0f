package repositories

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"tauthy/domain"
	"tauthy/errors"
	pb "tauthy/proto/tauthy/v1"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func openStores(t *testing.T) map[string]*Store {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelError)

	badgerStore, err := OpenStore(DriverBadger, t.TempDir(), log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = badgerStore.Close() })

	sqliteStore, err := OpenStore(DriverSQLite, filepath.Join(t.TempDir(), "tauthy.db"), log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteStore.Close() })

	return map[string]*Store{DriverBadger: badgerStore, DriverSQLite: sqliteStore}
}

func newUser(username string) NewUser {
	return NewUser{FirstName: "Somchai", LastName: "Jaidee", Username: username, PasswordHash: "$argon2id$hash"}
}

func entryFor(userID string, at time.Time, text string) domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:           uuid.NewString(),
		UserID:       userID,
		Text:         text,
		Source:       domain.SourceText,
		Label:        "human",
		Confidence:   66.67,
		Details:      map[string]float64{"ai": 33.33, "human": 66.67},
		Language:     "en",
		Markers:      []string{"delve into"},
		ModelVersion: "test-1",
		CreatedAt:    at.UTC(),
	}
}

func TestUserRepository_CreateAndFetch(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)

			id, err := store.Users.CreateUser(newUser("somchai"))
			req.NoError(err)
			req.NotEmpty(id)

			byName, err := store.Users.GetUserByUsername("somchai")
			req.NoError(err)
			req.Equal(id, byName.ID)
			req.Equal("Jaidee", byName.LastName)
			req.Equal("$argon2id$hash", byName.PasswordHash)

			byID, err := store.Users.GetUserByID(id)
			req.NoError(err)
			req.Equal("somchai", byID.Username)

			_, err = store.Users.CreateUser(newUser("somchai"))
			req.ErrorIs(err, errors.ErrUserAlreadyExists)

			_, err = store.Users.GetUserByUsername("nobody")
			req.ErrorIs(err, errors.ErrNotFound)
			_, err = store.Users.GetUserByID("missing")
			req.ErrorIs(err, errors.ErrNotFound)

			req.NoError(store.Users.UpdatePasswordHash(id, "$argon2id$new"))
			updated, err := store.Users.GetUserByUsername("somchai")
			req.NoError(err)
			req.Equal("$argon2id$new", updated.PasswordHash)
			req.ErrorIs(store.Users.UpdatePasswordHash("missing", "x"), errors.ErrNotFound)
		})
	}
}

func TestHistoryRepository_NewestFirst(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			alice, err := store.Users.CreateUser(newUser("alice"))
			req.NoError(err)
			bob, err := store.Users.CreateUser(newUser("bob"))
			req.NoError(err)

			now := time.Now()
			for i := 1; i <= 3; i++ {
				req.NoError(store.History.Save(entryFor(alice, now.Add(time.Duration(i)*time.Minute), fmt.Sprintf("entry %d", i))))
			}
			req.NoError(store.History.Save(entryFor(bob, now.Add(time.Hour), "bob only")))

			all, err := store.History.ListByUser(alice, 0)
			req.NoError(err)
			req.Len(all, 3)
			req.Equal("entry 3", all[0].Text)
			req.Equal("entry 2", all[1].Text)
			req.Equal("entry 1", all[2].Text)
			req.Equal(map[string]float64{"ai": 33.33, "human": 66.67}, all[0].Details)
			req.Equal([]string{"delve into"}, all[0].Markers)

			limited, err := store.History.ListByUser(alice, 2)
			req.NoError(err)
			req.Len(limited, 2)
			req.Equal("entry 3", limited[0].Text)

			none, err := store.History.ListByUser(uuid.NewString(), 0)
			req.NoError(err)
			req.Empty(none)
		})
	}
}

func TestHistoryRepository_FeedbackAndOpinion(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			alice, err := store.Users.CreateUser(newUser("alice"))
			req.NoError(err)
			bob, err := store.Users.CreateUser(newUser("bob"))
			req.NoError(err)

			entry := entryFor(alice, time.Now(), "some text")
			req.NoError(store.History.Save(entry))

			req.NoError(store.History.UpdateFeedback(alice, entry.ID, domain.FeedbackAI))
			opinion := domain.SecondOpinion{AI: 80, Human: 20, Reason: "too uniform", Model: "llama3", CreatedAt: time.Now().UTC()}
			req.NoError(store.History.SetOpinion(alice, entry.ID, opinion))

			got, err := store.History.Get(alice, entry.ID)
			req.NoError(err)
			req.Equal(domain.FeedbackAI, got.Feedback)
			req.NotNil(got.Opinion)
			req.Equal("too uniform", got.Opinion.Reason)
			req.InDelta(80, got.Opinion.AI, 1e-9)
			req.True(entry.CreatedAt.Equal(got.CreatedAt))

			// another user can neither read nor touch it
			_, err = store.History.Get(bob, entry.ID)
			req.ErrorIs(err, errors.ErrNotFound)
			req.ErrorIs(store.History.UpdateFeedback(bob, entry.ID, domain.FeedbackHuman), errors.ErrNotFound)
			req.ErrorIs(store.History.SetOpinion(alice, uuid.NewString(), opinion), errors.ErrNotFound)
		})
	}
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	_, err := OpenStore("postgres", t.TempDir(), logs.GetLoggerFromLevel(slog.LevelError))
	require.ErrorIs(t, err, errors.ErrUnknownStorageDriver)
}

func TestBadgerRepositories_StoreProtobufValues(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.WARNING))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })
	users := NewUserRepository(db)
	history := NewHistoryRepository(db, logs.GetLoggerFromLevel(slog.LevelError))

	id, err := users.CreateUser(newUser("somchai"))
	req.NoError(err)
	entry := entryFor(id, time.Now(), "สวัสดีครับ")
	entry.Opinion = &domain.SecondOpinion{AI: 70, Human: 30, Model: "llama3", CreatedAt: time.Now().UTC()}
	req.NoError(history.Save(entry))

	var userPb pb.User
	var entryPb pb.HistoryEntry
	req.NoError(db.View(func(txn *badger.Txn) error {
		raw, err := getValue(txn, userKey("somchai"))
		if err != nil {
			return err
		}
		if err := proto.Unmarshal(raw, &userPb); err != nil {
			return err
		}
		raw, err = getValue(txn, historyKey(entry))
		if err != nil {
			return err
		}
		return proto.Unmarshal(raw, &entryPb)
	}))

	req.Equal(id, userPb.GetId())
	req.Equal("$argon2id$hash", userPb.GetPasswordHash())
	req.False(userPb.GetCreatedAt().AsTime().IsZero())

	req.Equal(entry.ID, entryPb.GetId())
	req.Equal(id, entryPb.GetUserId())
	req.Equal("สวัสดีครับ", entryPb.GetText())
	req.Len(entryPb.GetDetails(), 2)
	req.Equal("ai", entryPb.GetDetails()[0].GetLabel())
	req.InDelta(33.33, entryPb.GetDetails()[0].GetPercent(), 1e-9)
	req.Equal("human", entryPb.GetDetails()[1].GetLabel())
	req.Equal("llama3", entryPb.GetOpinion().GetModel())
	req.True(entry.CreatedAt.Equal(entryPb.GetCreatedAt().AsTime()))
}
