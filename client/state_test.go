package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockadmin/client"
	"stockadmin/internal/domain"
)

func newTestState(t *testing.T, notifications []domain.Notification) (*client.State, *int64) {
	t.Helper()

	var listCalls int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			atomic.AddInt64(&listCalls, 1)
			json.NewEncoder(w).Encode(map[string]any{"notifications": notifications})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	api := client.New(server.URL, "test-token")
	return client.NewState(api, nil), &listCalls
}

func unreadInEntries(entries []domain.Notification) int {
	count := 0
	for _, n := range entries {
		if !n.Read {
			count++
		}
	}
	return count
}

func TestStateLoadLatch(t *testing.T) {
	state, listCalls := newTestState(t, []domain.Notification{
		{ID: 2, Title: "Second", Read: false},
		{ID: 1, Title: "First", Read: true},
	})
	ctx := context.Background()

	require.NoError(t, state.Load(ctx, false))
	require.NoError(t, state.Load(ctx, false))
	assert.Equal(t, int64(1), atomic.LoadInt64(listCalls))

	require.NoError(t, state.Load(ctx, true))
	assert.Equal(t, int64(2), atomic.LoadInt64(listCalls))

	assert.Equal(t, 1, state.UnreadCount())
	assert.Len(t, state.Notifications(), 2)
}

func TestStateUnreadCountInvariant(t *testing.T) {
	state, _ := newTestState(t, []domain.Notification{
		{ID: 3, Title: "C", Read: false},
		{ID: 2, Title: "B", Read: false},
		{ID: 1, Title: "A", Read: true},
	})
	require.NoError(t, state.Load(context.Background(), false))

	check := func() {
		assert.Equal(t, unreadInEntries(state.Notifications()), state.UnreadCount())
	}
	check()

	state.AddFromPush("Pushed", "New entry", domain.SeverityInfo, time.Now())
	check()
	assert.Equal(t, 3, state.UnreadCount())

	state.MarkRead(3)
	check()
	assert.Equal(t, 2, state.UnreadCount())

	// Marking again must not double-decrement.
	state.MarkRead(3)
	check()
	assert.Equal(t, 2, state.UnreadCount())

	state.Delete(2)
	check()
	assert.Equal(t, 1, state.UnreadCount())

	// Deleting an already-read entry leaves the counter alone.
	state.Delete(1)
	check()
	assert.Equal(t, 1, state.UnreadCount())

	state.MarkAllRead()
	check()
	assert.Equal(t, 0, state.UnreadCount())

	state.ClearAll()
	check()
	assert.Empty(t, state.Notifications())
}

func TestStateAddFromPushOrdering(t *testing.T) {
	state, _ := newTestState(t, []domain.Notification{
		{ID: 1, Title: "Old", Read: true},
	})
	require.NoError(t, state.Load(context.Background(), false))

	state.AddFromPush("Newest", "Arrived over the wire", domain.SeverityWarning, time.Now())

	entries := state.Notifications()
	require.Len(t, entries, 2)
	assert.Equal(t, "Newest", entries[0].Title)
	assert.False(t, entries[0].Read)
	assert.Negative(t, entries[0].ID)
	assert.Equal(t, "Old", entries[1].Title)
}

func TestStateMutationsBeforeLoad(t *testing.T) {
	state, _ := newTestState(t, nil)

	// The widget may receive pushes before the first list fetch.
	state.AddFromPush("Early", "Pushed before load", domain.SeverityInfo, time.Now())
	assert.Equal(t, 1, state.UnreadCount())

	state.MarkAllRead()
	assert.Equal(t, 0, state.UnreadCount())
}
