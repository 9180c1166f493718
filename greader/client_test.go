package greader

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{
			name:    "valid config",
			baseURL: "https://rss.example.com/api/greader.php",
			wantErr: false,
		},
		{
			name:    "trailing slash trimmed",
			baseURL: "https://rss.example.com/api/greader.php/",
			wantErr: false,
		},
		{
			name:    "missing URL",
			baseURL: "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.baseURL, logger)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "https://rss.example.com/api/greader.php", client.BaseURL())
			assert.Empty(t, client.AuthToken())
		})
	}
}

func TestClientOptions(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient("http://localhost", logger, WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient("http://localhost", logger, WithHTTPClient(customClient))
		require.NoError(t, err)
		assert.Equal(t, customClient, client.httpClient)
	})

	t.Run("with auth token", func(t *testing.T) {
		client, err := NewClient("http://localhost", logger, WithAuthToken("tok"))
		require.NoError(t, err)
		assert.Equal(t, "tok", client.AuthToken())
	})

	t.Run("with client id", func(t *testing.T) {
		client, err := NewClient("http://localhost", logger, WithClientID("myapp"))
		require.NoError(t, err)
		assert.Equal(t, "myapp", client.clientID)
	})

	t.Run("empty client id keeps default", func(t *testing.T) {
		client, err := NewClient("http://localhost", logger, WithClientID(""))
		require.NoError(t, err)
		assert.Equal(t, defaultClientID, client.clientID)
	})

	t.Run("with rate limit", func(t *testing.T) {
		client, err := NewClient("http://localhost", logger, WithRateLimit(60, 2))
		require.NoError(t, err)
		require.NotNil(t, client.limiter)
		assert.Equal(t, 2, client.limiter.Burst())
	})

	t.Run("no rate limit by default", func(t *testing.T) {
		client, err := NewClient("http://localhost", logger)
		require.NoError(t, err)
		assert.Nil(t, client.limiter)
	})
}

func TestTestConnection(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reader/api/0/user-info", r.URL.Path)
		w.Write([]byte(`{"userId": "1", "userName": "alice"}`))
	}), WithAuthToken("AUTH"))

	require.NoError(t, client.TestConnection(context.Background()))
}

func TestConcurrentTokenAccess(t *testing.T) {
	client, err := NewClient("http://localhost", zerolog.Nop())
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			client.SetPostToken("a")
			_ = client.AuthToken()
		}
	}()
	for i := 0; i < 100; i++ {
		client.SetAuthToken("b")
		_ = client.PostToken()
	}
	<-done

	assert.Equal(t, "b", client.AuthToken())
	assert.Equal(t, "a", client.PostToken())
}
