package greader

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

// ListOptions narrows an item listing. Zero-valued fields are omitted from
// the request entirely.
type ListOptions struct {
	// Number caps how many items the server returns (parameter n).
	Number int
	// Continuation resumes a previous listing (parameter c).
	Continuation string
	// NewerThan and OlderThan bound item time in epoch seconds
	// (parameters ot and nt).
	NewerThan int64
	OlderThan int64
	// ExcludeTarget drops items carrying the given state, e.g. "read"
	// (parameter xt). Bare names are canonicalized as states.
	ExcludeTarget string
	// Ascending lists oldest items first (parameter r=o).
	Ascending bool
}

func (o ListOptions) values() url.Values {
	params := url.Values{}
	if o.Number > 0 {
		params.Set("n", strconv.Itoa(o.Number))
	}
	if o.Continuation != "" {
		params.Set("c", o.Continuation)
	}
	if o.NewerThan > 0 {
		params.Set("ot", strconv.FormatInt(o.NewerThan, 10))
	}
	if o.OlderThan > 0 {
		params.Set("nt", strconv.FormatInt(o.OlderThan, 10))
	}
	if o.ExcludeTarget != "" {
		params.Set("xt", StateStream(o.ExcludeTarget))
	}
	if o.Ascending {
		params.Set("r", "o")
	}
	return params
}

// StreamItems lists the items of a stream with their full contents.
// The stream may be a bare feed URL, a label or state stream ID, or one of
// the Stream* constants. Pagination runs through opts.Continuation and the
// Continuation field of the response.
func (c *Client) StreamItems(ctx context.Context, stream string, opts ListOptions) (*StreamContents, error) {
	if stream == "" {
		return nil, errMissingStream()
	}

	var contents StreamContents
	path := apiPrefix + "/stream/contents/" + url.PathEscape(FeedStream(stream))
	if err := c.getJSON(ctx, path, opts.values(), &contents); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("stream", FeedStream(stream)).
		Int("count", len(contents.Items)).
		Msg("Retrieved stream items")
	return &contents, nil
}

// ItemIDs lists short item references for a stream, which is considerably
// cheaper than StreamItems when only IDs and timestamps are needed.
func (c *Client) ItemIDs(ctx context.Context, stream string, opts ListOptions) (*ItemRefs, error) {
	if stream == "" {
		return nil, errMissingStream()
	}

	params := opts.values()
	params.Set("s", FeedStream(stream))

	var refs ItemRefs
	if err := c.getJSON(ctx, apiPrefix+"/stream/items/ids", params, &refs); err != nil {
		return nil, err
	}
	return &refs, nil
}

// ItemContents fetches full contents for an explicit set of item IDs.
// IDs may be short decimal or long tag: form; they are sent in caller
// order, one repeated i parameter per item.
func (c *Client) ItemContents(ctx context.Context, ids ...string) ([]Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	params := url.Values{"i": ids}

	body, err := c.post(ctx, apiPrefix+"/stream/items/contents", params)
	if err != nil {
		return nil, err
	}

	var resp itemContentsResponse
	if err := unmarshalBody(body, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// EditItemTags adds and/or removes tags on a set of items in one request.
// Bare tag names are canonicalized as labels; state stream IDs pass
// through unchanged. Item order is preserved on the wire.
func (c *Client) EditItemTags(ctx context.Context, ids []string, add, remove []string) error {
	if len(ids) == 0 {
		return nil
	}

	params := url.Values{"i": ids}
	for _, tag := range add {
		params.Add("a", LabelStream(tag))
	}
	for _, tag := range remove {
		params.Add("r", LabelStream(tag))
	}

	_, err := c.post(ctx, apiPrefix+"/edit-tag", params)
	return err
}

// MarkItemsRead flags the given items with the read state.
func (c *Client) MarkItemsRead(ctx context.Context, ids ...string) error {
	return c.EditItemTags(ctx, ids, []string{StreamRead}, nil)
}

// MarkItemsUnread clears the read state and pins the items kept-unread so
// the server does not immediately re-age them.
func (c *Client) MarkItemsUnread(ctx context.Context, ids ...string) error {
	return c.EditItemTags(ctx, ids, []string{StreamKeptUnread}, []string{StreamRead})
}

// StarItems flags the given items with the starred state.
func (c *Client) StarItems(ctx context.Context, ids ...string) error {
	return c.EditItemTags(ctx, ids, []string{StreamStarred}, nil)
}

// UnstarItems clears the starred state.
func (c *Client) UnstarItems(ctx context.Context, ids ...string) error {
	return c.EditItemTags(ctx, ids, nil, []string{StreamStarred})
}

// MarkAllRead marks every item in a stream read. A non-zero cutoff limits
// the operation to items older than that instant (parameter ts, in
// microseconds); a zero cutoff omits the parameter so the server marks the
// whole stream.
func (c *Client) MarkAllRead(ctx context.Context, stream string, cutoff time.Time) error {
	if stream == "" {
		return errMissingStream()
	}

	params := url.Values{}
	params.Set("s", FeedStream(stream))
	if !cutoff.IsZero() {
		params.Set("ts", strconv.FormatInt(cutoff.UnixMicro(), 10))
	}

	_, err := c.post(ctx, apiPrefix+"/mark-all-as-read", params)
	return err
}
