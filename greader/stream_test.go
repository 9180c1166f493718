package greader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedStream(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare URL gets feed prefix",
			input:    "http://x.com/feed",
			expected: "feed/http://x.com/feed",
		},
		{
			name:     "canonical feed ID unchanged",
			input:    "feed/http://x.com/feed",
			expected: "feed/http://x.com/feed",
		},
		{
			name:     "canonical label ID passes through",
			input:    "user/-/label/news",
			expected: "user/-/label/news",
		},
		{
			name:     "canonical state ID passes through",
			input:    "user/-/state/com.google/reading-list",
			expected: "user/-/state/com.google/reading-list",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FeedStream(tt.input))
		})
	}
}

func TestLabelStream(t *testing.T) {
	assert.Equal(t, "user/-/label/news", LabelStream("news"))
	assert.Equal(t, "user/-/label/news", LabelStream("user/-/label/news"))
	assert.Equal(t, StreamRead, LabelStream(StreamRead))
}

func TestStateStream(t *testing.T) {
	assert.Equal(t, "user/-/state/com.google/read", StateStream("read"))
	assert.Equal(t, "user/-/state/com.google/read", StateStream("user/-/state/com.google/read"))
}

func TestCanonicalizationIsIdempotent(t *testing.T) {
	inputs := []string{"http://x.com/feed", "news", "read"}
	for _, in := range inputs {
		assert.Equal(t, FeedStream(in), FeedStream(FeedStream(in)))
		assert.Equal(t, LabelStream(in), LabelStream(LabelStream(in)))
		assert.Equal(t, StateStream(in), StateStream(StateStream(in)))
	}
}

func TestIsCanonicalStream(t *testing.T) {
	assert.True(t, IsCanonicalStream("feed/http://x.com/feed"))
	assert.True(t, IsCanonicalStream("user/-/label/news"))
	assert.True(t, IsCanonicalStream("user/-/state/com.google/starred"))
	assert.False(t, IsCanonicalStream("http://x.com/feed"))
	assert.False(t, IsCanonicalStream("news"))
	assert.False(t, IsCanonicalStream(""))
}

func TestLabelName(t *testing.T) {
	assert.Equal(t, "news", LabelName("user/-/label/news"))
	assert.Equal(t, "feed/http://x.com", LabelName("feed/http://x.com"))
}
