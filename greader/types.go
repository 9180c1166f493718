package greader

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FlexInt64 decodes the decimal-string timestamp fields GReader servers
// emit (crawlTimeMsec, timestampUsec, firstitemmsec and friends) while
// still accepting bare JSON numbers from servers that send them unquoted.
type FlexInt64 int64

// UnmarshalJSON implements json.Unmarshaler.
func (n *FlexInt64) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("failed to parse %q as integer: %w", data, err)
	}
	*n = FlexInt64(v)
	return nil
}

// Int64 returns the value as a plain int64.
func (n FlexInt64) Int64() int64 { return int64(n) }

// Category is a label or state attached to a subscription.
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Subscription represents one subscribed feed.
type Subscription struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Categories    []Category `json:"categories"`
	URL           string     `json:"url"`
	HTMLURL       string     `json:"htmlUrl"`
	IconURL       string     `json:"iconUrl"`
	FirstItemMsec FlexInt64  `json:"firstitemmsec"`
}

// Labels returns the label names (stripped of the user/-/label/ prefix)
// attached to the subscription.
func (s *Subscription) Labels() []string {
	var labels []string
	for _, c := range s.Categories {
		if !strings.HasPrefix(c.ID, labelPrefix) {
			continue
		}
		if c.Label != "" {
			labels = append(labels, c.Label)
		} else {
			labels = append(labels, LabelName(c.ID))
		}
	}
	return labels
}

// Tag represents a user label or system state known to the server.
type Tag struct {
	ID     string `json:"id"`
	SortID string `json:"sortid"`
}

// IsLabel reports whether the tag is a user-created label rather than a
// system state.
func (t *Tag) IsLabel() bool {
	return strings.HasPrefix(t.ID, labelPrefix)
}

// Name returns the display name of the tag.
func (t *Tag) Name() string {
	return LabelName(t.ID)
}

// UnreadCount holds the unread item count for one stream.
type UnreadCount struct {
	ID                      string    `json:"id"`
	Count                   int64     `json:"count"`
	NewestItemTimestampUsec FlexInt64 `json:"newestItemTimestampUsec"`
}

// UnreadCounts is the response of the unread-count endpoint.
type UnreadCounts struct {
	Max          int64         `json:"max"`
	UnreadCounts []UnreadCount `json:"unreadcounts"`
}

// For returns the unread count for the given stream ID, or zero when the
// server reported none.
func (u *UnreadCounts) For(streamID string) int64 {
	for _, c := range u.UnreadCounts {
		if c.ID == streamID {
			return c.Count
		}
	}
	return 0
}

// UserInfo describes the authenticated account.
type UserInfo struct {
	UserID        string `json:"userId"`
	UserName      string `json:"userName"`
	UserProfileID string `json:"userProfileId"`
	UserEmail     string `json:"userEmail"`
}

// ItemOrigin identifies the feed an item was crawled from.
type ItemOrigin struct {
	StreamID string `json:"streamId"`
	Title    string `json:"title"`
	HTMLURL  string `json:"htmlUrl"`
}

// ItemContent holds an item body fragment.
type ItemContent struct {
	Direction string `json:"direction"`
	Content   string `json:"content"`
}

// ItemLink is an alternate/canonical/enclosure link on an item.
type ItemLink struct {
	Href string `json:"href"`
	Type string `json:"type"`
}

// Item is one entry in a stream.
type Item struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Author        string      `json:"author"`
	Published     int64       `json:"published"`
	Updated       int64       `json:"updated"`
	CrawlTimeMsec FlexInt64   `json:"crawlTimeMsec"`
	TimestampUsec FlexInt64   `json:"timestampUsec"`
	Categories    []string    `json:"categories"`
	Origin        ItemOrigin  `json:"origin"`
	Summary       ItemContent `json:"summary"`
	Content       ItemContent `json:"content"`
	Alternate     []ItemLink  `json:"alternate"`
	Canonical     []ItemLink  `json:"canonical"`
	Enclosure     []ItemLink  `json:"enclosure"`
}

// HasCategory reports whether the item carries the given stream ID as a
// category.
func (i *Item) HasCategory(streamID string) bool {
	for _, c := range i.Categories {
		if c == streamID {
			return true
		}
	}
	return false
}

// Read reports whether the item carries the read state. The server has no
// direct boolean field for this; it is derived from the category list.
func (i *Item) Read() bool {
	return i.HasCategory(StreamRead)
}

// Starred reports whether the item carries the starred state.
func (i *Item) Starred() bool {
	return i.HasCategory(StreamStarred)
}

// URL returns the item's alternate link, falling back to the canonical one.
func (i *Item) URL() string {
	if len(i.Alternate) > 0 {
		return i.Alternate[0].Href
	}
	if len(i.Canonical) > 0 {
		return i.Canonical[0].Href
	}
	return ""
}

// PublishedTime returns the published timestamp as a time.Time.
func (i *Item) PublishedTime() time.Time {
	return time.Unix(i.Published, 0)
}

// Body returns the richest body fragment the server sent.
func (i *Item) Body() string {
	if i.Content.Content != "" {
		return i.Content.Content
	}
	return i.Summary.Content
}

// StreamContents is the response of the stream contents endpoint.
type StreamContents struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Updated      int64  `json:"updated"`
	Continuation string `json:"continuation"`
	Items        []Item `json:"items"`
}

// ItemRef is a short item reference as returned by the item IDs endpoint.
// The server transmits the ID as a decimal string.
type ItemRef struct {
	ID              FlexInt64 `json:"id"`
	TimestampUsec   FlexInt64 `json:"timestampUsec"`
	DirectStreamIDs []string  `json:"directStreamIds"`
}

// LongID returns the long form of the reference
// (tag:google.com,2005:reader/item/<16 hex digits>), which the item
// contents endpoint expects.
func (r *ItemRef) LongID() string {
	return fmt.Sprintf("tag:google.com,2005:reader/item/%016x", uint64(r.ID))
}

// ItemRefs is the response of the item IDs endpoint.
type ItemRefs struct {
	ItemRefs     []ItemRef `json:"itemRefs"`
	Continuation string    `json:"continuation"`
}

// QuickAddResult is the response of the subscription quickadd endpoint.
type QuickAddResult struct {
	Query      string `json:"query"`
	NumResults int    `json:"numResults"`
	StreamID   string `json:"streamId"`
	StreamName string `json:"streamName"`
}

type subscriptionList struct {
	Subscriptions []Subscription `json:"subscriptions"`
}

type tagList struct {
	Tags []Tag `json:"tags"`
}

type itemContentsResponse struct {
	Items []Item `json:"items"`
}
