package greader

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverview(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/reader/api/0/subscription/list":
			w.Write([]byte(`{"subscriptions": [
				{"id": "feed/http://x.com/feed", "title": "X blog"},
				{"id": "feed/http://y.com/rss", "title": "Y news"}
			]}`))
		case "/reader/api/0/tag/list":
			w.Write([]byte(`{"tags": [
				{"id": "user/-/state/com.google/starred"},
				{"id": "user/-/label/tech"}
			]}`))
		case "/reader/api/0/unread-count":
			w.Write([]byte(`{"max": 1000, "unreadcounts": [
				{"id": "feed/http://x.com/feed", "count": 4, "newestItemTimestampUsec": "1640980001000000"},
				{"id": "user/-/state/com.google/reading-list", "count": 4}
			]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}), WithAuthToken("AUTH"))

	overview, err := client.Overview(context.Background())
	require.NoError(t, err)

	assert.Len(t, overview.Subscriptions, 2)
	assert.Len(t, overview.Tags, 2)
	assert.Equal(t, int64(4), overview.UnreadFor("http://x.com/feed"))
	assert.Equal(t, int64(4), overview.UnreadFor("feed/http://x.com/feed"))
	assert.Zero(t, overview.UnreadFor("http://y.com/rss"))
	assert.Equal(t, int64(4), overview.TotalUnread())
}

func TestOverviewPropagatesFirstError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/reader/api/0/tag/list" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("boom"))
			return
		}
		w.Write([]byte(`{}`))
	}), WithAuthToken("AUTH"))

	_, err := client.Overview(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestOverviewZeroValues(t *testing.T) {
	var overview Overview
	assert.Zero(t, overview.UnreadFor("anything"))
	assert.Zero(t, overview.TotalUnread())
}
