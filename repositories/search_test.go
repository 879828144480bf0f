package repositories

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newTestIndex(t *testing.T, pageSize int) *HistoryIndex {
	t.Helper()
	index, err := NewHistoryIndex(t.TempDir(), logs.GetLoggerFromLevel(slog.LevelError), pageSize)
	require.NoError(t, err)
	t.Cleanup(func() { _ = index.Close() })
	return index
}

func TestHistoryIndex_SearchIsScopedToUser(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t, 10)
	ctx := context.Background()

	alpha := entryFor("alice", time.Now(), "The committee will delve into the budget")
	beta := entryFor("bob", time.Now(), "We delve into the budget as well")
	req.NoError(index.Index(alpha, strings.Fields("the committee will delve into the budget")))
	req.NoError(index.Index(beta, strings.Fields("we delve into the budget as well")))

	ids, total, err := index.Search(ctx, "alice", []string{"budget"}, 0)
	req.NoError(err)
	req.Equal(uint64(1), total)
	req.Equal([]string{alpha.ID}, ids)

	ids, total, err = index.Search(ctx, "alice", []string{"nonexistent"}, 0)
	req.NoError(err)
	req.Zero(total)
	req.Empty(ids)
}

func TestHistoryIndex_FindsThaiByTokens(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t, 10)

	entry := entryFor("alice", time.Now(), "วันนี้อากาศดีมาก")
	req.NoError(index.Index(entry, []string{"วันนี้", "อากาศ", "ดี"}))

	ids, total, err := index.Search(context.Background(), "alice", []string{"อากาศ"}, 0)
	req.NoError(err)
	req.Equal(uint64(1), total)
	req.Equal([]string{entry.ID}, ids)
}

func TestHistoryIndex_Pagination(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t, 3)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		entry := entryFor("alice", time.Now().Add(time.Duration(i)*time.Second), "pagination test content")
		req.NoError(index.Index(entry, []string{"pagination", "test", "content"}))
	}

	seen := map[string]struct{}{}
	for offset, want := range map[int]int{0: 3, 3: 3, 6: 1} {
		ids, total, err := index.Search(ctx, "alice", []string{"pagination"}, offset)
		req.NoError(err)
		req.Equal(uint64(7), total)
		req.Len(ids, want, "offset %d", offset)
		for _, id := range ids {
			_, dup := seen[id]
			req.False(dup, "id %s returned twice", id)
			seen[id] = struct{}{}
		}
	}
	req.Len(seen, 7)
}

func TestHistoryIndex_EmptyQuery(t *testing.T) {
	index := newTestIndex(t, 10)
	require.NoError(t, index.Index(entryFor("alice", time.Now(), "anything"), []string{"anything"}))

	ids, total, err := index.Search(context.Background(), "alice", []string{"  "}, 0)
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, ids)
}
