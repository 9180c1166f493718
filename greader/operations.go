package greader

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Overview bundles the three listings a reader frontend needs at startup.
type Overview struct {
	Subscriptions []Subscription
	Tags          []Tag
	Unread        *UnreadCounts
}

// UnreadFor returns the unread count for a stream, canonicalizing bare
// feed URLs first.
func (o *Overview) UnreadFor(stream string) int64 {
	if o.Unread == nil {
		return 0
	}
	return o.Unread.For(FeedStream(stream))
}

// TotalUnread returns the unread count of the reading list, which the
// server caps at Unread.Max.
func (o *Overview) TotalUnread() int64 {
	if o.Unread == nil {
		return 0
	}
	return o.Unread.For(StreamReadingList)
}

// Overview fetches subscriptions, tags and unread counts concurrently.
// The three GETs are independent; the first error cancels the rest.
func (c *Client) Overview(ctx context.Context) (*Overview, error) {
	var overview Overview

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		subs, err := c.Subscriptions(ctx)
		if err != nil {
			return err
		}
		overview.Subscriptions = subs
		return nil
	})
	g.Go(func() error {
		tags, err := c.Tags(ctx)
		if err != nil {
			return err
		}
		overview.Tags = tags
		return nil
	})
	g.Go(func() error {
		counts, err := c.UnreadCounts(ctx)
		if err != nil {
			return err
		}
		overview.Unread = counts
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &overview, nil
}
