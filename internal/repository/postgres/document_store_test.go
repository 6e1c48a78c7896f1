package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driver-buddy/internal/domain"
	"driver-buddy/internal/model"
)

func newTestStore(t *testing.T) (*DocumentStore, int64) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := NewPool(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	userID := time.Now().UnixNano()
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM documents WHERE user_id = $1`, userID)
	})
	return NewDocumentStore(pool, 0), userID
}

func TestDocumentStore_Pays(t *testing.T) {
	store, user := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SavePay(ctx, user, model.DailyPay{ID: "a", Date: "2024-06-10", TotalPay: 10}))
	require.NoError(t, store.SavePay(ctx, user, model.DailyPay{ID: "b", Date: "2024-06-11", TotalPay: 20}))
	require.NoError(t, store.SavePay(ctx, user, model.DailyPay{ID: "a", Date: "2024-06-10", TotalPay: 15}))

	pays, err := store.ListPays(ctx, user)
	require.NoError(t, err)
	require.Len(t, pays, 2)
	assert.Equal(t, "a", pays[0].ID)
	assert.Equal(t, 15.0, pays[0].TotalPay)

	assert.ErrorIs(t, store.DeletePay(ctx, user, "zzz"), domain.ErrNotFound)
	require.NoError(t, store.ReplacePays(ctx, user, []model.DailyPay{{ID: "c", Date: "2024-06-12"}}))
	pays, err = store.ListPays(ctx, user)
	require.NoError(t, err)
	require.Len(t, pays, 1)
	assert.Equal(t, "c", pays[0].ID)
}

func TestDocumentStore_EntriesAndSubmissions(t *testing.T) {
	store, user := newTestStore(t)
	ctx := context.Background()

	e, err := store.AddEntry(ctx, user, model.TimeEntry{StartTime: "0600", EndTime: "0900"})
	require.NoError(t, err)
	assert.NotZero(t, e.ID)

	require.NoError(t, store.AddSubmission(ctx, user, model.DailySubmission{Date: "2024-06-10", Entries: []model.TimeEntry{e}, TotalMinutes: 180}))
	require.NoError(t, store.ClearEntries(ctx, user))

	entries, err := store.ListEntries(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, entries)

	subs, err := store.ListSubmissions(ctx, user)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, 180, subs[0].TotalMinutes)
}
