package greader

import (
	"context"
	"time"
)

// API defines the operations the client exposes, for consumers that want
// to mock the GReader backend in tests.
type API interface {
	// Login exchanges credentials for a long-lived auth token.
	Login(ctx context.Context, username, password string) (string, error)

	// FetchPostToken obtains a fresh short-lived post token.
	FetchPostToken(ctx context.Context) (string, error)

	// TestConnection verifies connectivity and the auth token.
	TestConnection(ctx context.Context) error

	// UserInfo fetches the authenticated account's profile.
	UserInfo(ctx context.Context) (*UserInfo, error)

	// Subscriptions lists all subscribed feeds.
	Subscriptions(ctx context.Context) ([]Subscription, error)

	// UnreadCounts fetches per-stream unread counts.
	UnreadCounts(ctx context.Context) (*UnreadCounts, error)

	// Overview fetches subscriptions, tags and unread counts concurrently.
	Overview(ctx context.Context) (*Overview, error)

	// Subscribe, Unsubscribe and EditSubscription manage feed subscriptions.
	Subscribe(ctx context.Context, feedURL, title, label string) error
	Unsubscribe(ctx context.Context, feedURL string) error
	EditSubscription(ctx context.Context, feedURL, title, addLabel, removeLabel string) error
	QuickAdd(ctx context.Context, query string) (*QuickAddResult, error)

	// StreamItems and ItemIDs list items by stream; ItemContents fetches
	// items by explicit ID set.
	StreamItems(ctx context.Context, stream string, opts ListOptions) (*StreamContents, error)
	ItemIDs(ctx context.Context, stream string, opts ListOptions) (*ItemRefs, error)
	ItemContents(ctx context.Context, ids ...string) ([]Item, error)

	// EditItemTags mutates item tags in bulk.
	EditItemTags(ctx context.Context, ids []string, add, remove []string) error

	// MarkAllRead marks a stream read up to an optional cutoff.
	MarkAllRead(ctx context.Context, stream string, cutoff time.Time) error

	// Tags, RenameTag and DeleteTag manage user labels.
	Tags(ctx context.Context) ([]Tag, error)
	RenameTag(ctx context.Context, oldName, newName string) error
	DeleteTag(ctx context.Context, name string) error
}

var _ API = (*Client)(nil)
