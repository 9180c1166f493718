package greader

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamItems(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The stream ID is escaped into a single path segment
		assert.Equal(t, "/reader/api/0/stream/contents/feed%2Fhttp:%2F%2Fx.com%2Ffeed",
			r.URL.EscapedPath())

		query := r.URL.Query()
		assert.Equal(t, "10", query.Get("n"))
		_, present := query["c"]
		assert.False(t, present, "continuation key absent when not paging")

		w.Write([]byte(`{
			"id": "feed/http://x.com/feed",
			"continuation": "page2",
			"items": [{"id": "tag:google.com,2005:reader/item/1", "title": "hi"}]
		}`))
	}), WithAuthToken("AUTH"))

	contents, err := client.StreamItems(context.Background(), "http://x.com/feed",
		ListOptions{Number: 10})
	require.NoError(t, err)

	assert.Equal(t, "page2", contents.Continuation)
	require.Len(t, contents.Items, 1)
	assert.Equal(t, "hi", contents.Items[0].Title)
}

func TestStreamItemsRequiresStream(t *testing.T) {
	client, err := NewClient("http://localhost", zerolog.Nop())
	require.NoError(t, err)

	_, err = client.StreamItems(context.Background(), "", ListOptions{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestListOptionsValues(t *testing.T) {
	tests := []struct {
		name     string
		opts     ListOptions
		expected url.Values
	}{
		{
			name:     "zero options serialize nothing",
			opts:     ListOptions{},
			expected: url.Values{},
		},
		{
			name: "all options",
			opts: ListOptions{
				Number:        50,
				Continuation:  "abc",
				NewerThan:     100,
				OlderThan:     200,
				ExcludeTarget: "read",
				Ascending:     true,
			},
			expected: url.Values{
				"n":  {"50"},
				"c":  {"abc"},
				"ot": {"100"},
				"nt": {"200"},
				"xt": {"user/-/state/com.google/read"},
				"r":  {"o"},
			},
		},
		{
			name:     "canonical exclude target unchanged",
			opts:     ListOptions{ExcludeTarget: StreamRead},
			expected: url.Values{"xt": {StreamRead}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.opts.values())
		})
	}
}

func TestItemIDs(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reader/api/0/stream/items/ids", r.URL.Path)
		assert.Equal(t, "user/-/label/news", r.URL.Query().Get("s"))

		w.Write([]byte(`{
			"itemRefs": [
				{"id": "123", "timestampUsec": "1640980001000000"},
				{"id": "456", "timestampUsec": "1640980002000000"}
			],
			"continuation": "next"
		}`))
	}), WithAuthToken("AUTH"))

	refs, err := client.ItemIDs(context.Background(), "user/-/label/news", ListOptions{})
	require.NoError(t, err)

	require.Len(t, refs.ItemRefs, 2)
	assert.Equal(t, int64(123), refs.ItemRefs[0].ID.Int64())
	assert.Equal(t, "next", refs.Continuation)
}

func TestItemContentsPreservesOrder(t *testing.T) {
	ids := []string{
		"tag:google.com,2005:reader/item/3",
		"tag:google.com,2005:reader/item/1",
		"tag:google.com,2005:reader/item/2",
	}

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reader/api/0/stream/items/contents", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, ids, r.PostForm["i"], "repeated i keys keep caller order")

		w.Write([]byte(`{"items": []}`))
	}), WithAuthToken("AUTH"))

	_, err := client.ItemContents(context.Background(), ids...)
	require.NoError(t, err)
}

func TestItemContentsEmptySet(t *testing.T) {
	var hits int
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))

	items, err := client.ItemContents(context.Background())
	require.NoError(t, err)
	assert.Nil(t, items)
	assert.Zero(t, hits)
}

func TestEditItemTags(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reader/api/0/edit-tag", r.URL.Path)
		require.NoError(t, r.ParseForm())

		assert.Equal(t, []string{"id1", "id2"}, r.PostForm["i"])
		assert.Equal(t, []string{"user/-/label/news", StreamStarred}, r.PostForm["a"])
		assert.Equal(t, []string{StreamRead}, r.PostForm["r"])

		w.Write([]byte("OK"))
	}), WithAuthToken("AUTH"))

	err := client.EditItemTags(context.Background(),
		[]string{"id1", "id2"},
		[]string{"news", StreamStarred},
		[]string{StreamRead})
	require.NoError(t, err)
}

func TestMarkAllReadWithCutoff(t *testing.T) {
	cutoff := time.Unix(1640980000, 0)

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reader/api/0/mark-all-as-read", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "feed/http://x.com/feed", r.PostForm.Get("s"))
		assert.Equal(t, "1640980000000000", r.PostForm.Get("ts"))

		w.Write([]byte("OK"))
	}), WithAuthToken("AUTH"))

	err := client.MarkAllRead(context.Background(), "http://x.com/feed", cutoff)
	require.NoError(t, err)
}

func TestMarkAllReadWithoutCutoffOmitsTS(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		_, present := r.PostForm["ts"]
		assert.False(t, present, "ts must be absent, not zero")
		w.Write([]byte("OK"))
	}), WithAuthToken("AUTH"))

	err := client.MarkAllRead(context.Background(), "feed/http://x.com/feed", time.Time{})
	require.NoError(t, err)
}

func TestIdenticalStreamIDsForBareAndCanonicalInput(t *testing.T) {
	var streams []string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		streams = append(streams, r.PostForm.Get("s"))
		w.Write([]byte("OK"))
	}), WithAuthToken("AUTH"))

	ctx := context.Background()
	require.NoError(t, client.EditSubscription(ctx, "http://x.com/feed", "", "news", ""))
	require.NoError(t, client.EditSubscription(ctx, "feed/http://x.com/feed", "", "news", ""))

	require.Len(t, streams, 2)
	assert.Equal(t, streams[0], streams[1])
	assert.True(t, strings.HasPrefix(streams[0], "feed/"))
}
