package greader

import (
	"context"
	"net/url"
)

// Subscriptions lists all subscribed feeds.
func (c *Client) Subscriptions(ctx context.Context) ([]Subscription, error) {
	var list subscriptionList
	if err := c.getJSON(ctx, apiPrefix+"/subscription/list", nil, &list); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("count", len(list.Subscriptions)).Msg("Retrieved subscriptions")
	return list.Subscriptions, nil
}

// UnreadCounts fetches the per-stream unread counts.
func (c *Client) UnreadCounts(ctx context.Context) (*UnreadCounts, error) {
	var counts UnreadCounts
	if err := c.getJSON(ctx, apiPrefix+"/unread-count", nil, &counts); err != nil {
		return nil, err
	}
	return &counts, nil
}

// Subscribe adds a feed subscription. Title and label are optional; the
// label may be given bare or as a canonical stream ID.
func (c *Client) Subscribe(ctx context.Context, feedURL, title, label string) error {
	if feedURL == "" {
		return errMissingStream()
	}

	params := url.Values{}
	params.Set("ac", "subscribe")
	params.Set("s", FeedStream(feedURL))
	if title != "" {
		params.Set("t", title)
	}
	if label != "" {
		params.Set("a", LabelStream(label))
	}

	_, err := c.post(ctx, apiPrefix+"/subscription/edit", params)
	return err
}

// Unsubscribe removes a feed subscription.
func (c *Client) Unsubscribe(ctx context.Context, feedURL string) error {
	if feedURL == "" {
		return errMissingStream()
	}

	params := url.Values{}
	params.Set("ac", "unsubscribe")
	params.Set("s", FeedStream(feedURL))

	_, err := c.post(ctx, apiPrefix+"/subscription/edit", params)
	return err
}

// EditSubscription changes a subscription's title and/or its labels.
// Empty fields are omitted from the request entirely.
func (c *Client) EditSubscription(ctx context.Context, feedURL, title, addLabel, removeLabel string) error {
	if feedURL == "" {
		return errMissingStream()
	}

	params := url.Values{}
	params.Set("ac", "edit")
	params.Set("s", FeedStream(feedURL))
	if title != "" {
		params.Set("t", title)
	}
	if addLabel != "" {
		params.Set("a", LabelStream(addLabel))
	}
	if removeLabel != "" {
		params.Set("r", LabelStream(removeLabel))
	}

	_, err := c.post(ctx, apiPrefix+"/subscription/edit", params)
	return err
}

// QuickAdd subscribes to a feed by URL or search term, letting the server
// discover the actual feed.
func (c *Client) QuickAdd(ctx context.Context, query string) (*QuickAddResult, error) {
	if query == "" {
		return nil, errMissingStream()
	}

	params := url.Values{}
	params.Set("quickadd", query)

	body, err := c.post(ctx, apiPrefix+"/subscription/quickadd", params)
	if err != nil {
		return nil, err
	}

	var result QuickAddResult
	if err := unmarshalBody(body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
