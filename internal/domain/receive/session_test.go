package receive

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func seededStore(t *testing.T, n int) *Store {
	t.Helper()
	store := NewStore(newMemCache(), slog.Default())
	for i := 1; i <= n; i++ {
		_, err := store.Add(context.Background(), validRecord(strconv.Itoa(i)))
		require.NoError(t, err)
	}
	return store
}

func TestSession_SearchResetsToFirstPage(t *testing.T) {
	sess := NewSession(seededStore(t, 25), 10)
	require.True(t, sess.GoTo(3))

	sess.Search(Query{Term: "budget 1"})

	page := sess.Page()
	assert.Equal(t, 1, page.Page)
	assert.True(t, page.Filtered)
	// "Budget 1", "Budget 10".."Budget 19"
	assert.Equal(t, 11, page.Total)
	assert.Equal(t, 2, page.PageCount)
	assert.Len(t, page.Records, 10)
}

func TestSession_RefreshKeepsPage(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t, 25)
	sess := NewSession(store, 10)
	require.True(t, sess.GoTo(2))

	subject := "Edited"
	first := store.All()[12]
	_, err := store.Update(ctx, first.ID, Patch{ShortSubject: &subject})
	require.NoError(t, err)

	sess.Refresh()
	page := sess.Page()
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, "Edited", page.Records[2].ShortSubject)

	require.NoError(t, store.Clear(ctx))
	sess.Refresh()
	assert.Equal(t, 1, sess.Page().Page)
	assert.Equal(t, "Showing 0 records", sess.Page().Summary.String())
}

func TestSession_AfterAddJumpsToLastPage(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t, 20)
	sess := NewSession(store, 10)

	added, err := store.Add(ctx, validRecord("21"))
	require.NoError(t, err)
	sess.AfterAdd()

	page := sess.Page()
	assert.Equal(t, 3, page.Page)
	require.Len(t, page.Records, 1)
	assert.Equal(t, added.ID, page.Records[0].ID)
	assert.Equal(t, "1 2 [3]", stripString(page.Strip))
}

func TestSession_FilterWithNoMatches(t *testing.T) {
	sess := NewSession(seededStore(t, 5), 10)
	sess.Search(Query{Term: "zzz"})

	page := sess.Page()
	assert.True(t, page.Filtered)
	assert.Empty(t, page.Records)
	assert.Equal(t, 0, page.Total)
	assert.Nil(t, page.Strip)
}

func TestService_List(t *testing.T) {
	svc := NewService(seededStore(t, 57), 20, slog.Default())
	ctx := context.Background()

	resp, err := svc.List(ctx, ListParams{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 3, resp.PageCount)
	assert.Equal(t, "Showing 21-40 of 57 records", resp.Summary.String())
	assert.Equal(t, Stats{Total: 57, Pending: 57}, resp.Stats)

	all := Unbounded
	resp, err = svc.List(ctx, ListParams{PageSize: &all})
	require.NoError(t, err)
	assert.Len(t, resp.Records, 57)
	assert.True(t, resp.Summary.All)

	resp, err = svc.List(ctx, ListParams{Page: 99})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page)
}

func TestService_CreateReturnsLastPage(t *testing.T) {
	svc := NewService(seededStore(t, 20), 10, slog.Default())

	resp, err := svc.Create(context.Background(), validRecord("21"))
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Page.Page)
	assert.Equal(t, resp.Record.ID, resp.Page.Records[0].ID)
	assert.Equal(t, "22", svc.NextNumber(context.Background()))
}

func TestCountStats(t *testing.T) {
	records := []Record{
		{Action: ActionPending},
		{Action: "PENDING"},
		{Action: " Success "},
		{Action: "forwarded"},
		{},
	}

	assert.Equal(t, Stats{Total: 5, Pending: 2, Success: 1}, CountStats(records))
}
