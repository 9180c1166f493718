package greader

import "strings"

// Stream ID prefixes fixed by the GReader wire contract.
const (
	feedPrefix  = "feed/"
	labelPrefix = "user/-/label/"
	statePrefix = "user/-/state/com.google/"
)

// Well-known system state streams.
const (
	StreamReadingList = statePrefix + "reading-list"
	StreamRead        = statePrefix + "read"
	StreamKeptUnread  = statePrefix + "kept-unread"
	StreamStarred     = statePrefix + "starred"
	StreamBroadcast   = statePrefix + "broadcast"
)

// IsCanonicalStream reports whether s already carries one of the three
// recognized stream ID prefixes. The prefixes are mutually non-overlapping,
// so a plain prefix test is sufficient.
func IsCanonicalStream(s string) bool {
	return strings.HasPrefix(s, feedPrefix) ||
		strings.HasPrefix(s, labelPrefix) ||
		strings.HasPrefix(s, statePrefix)
}

// FeedStream canonicalizes a feed URL into a feed stream ID. Values that
// are already canonical (any prefix, not just feed/) pass through unchanged,
// so callers may hand in label or state IDs where a generic stream is
// expected.
func FeedStream(s string) string {
	if IsCanonicalStream(s) {
		return s
	}
	return feedPrefix + s
}

// LabelStream canonicalizes a label name into a label stream ID.
func LabelStream(name string) string {
	if IsCanonicalStream(name) {
		return name
	}
	return labelPrefix + name
}

// StateStream canonicalizes a state name into a system state stream ID.
func StateStream(name string) string {
	if IsCanonicalStream(name) {
		return name
	}
	return statePrefix + name
}

// LabelName returns the bare name of a label stream ID, or the input
// unchanged if it is not a label stream.
func LabelName(streamID string) string {
	return strings.TrimPrefix(streamID, labelPrefix)
}
