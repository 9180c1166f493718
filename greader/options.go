package greader

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	clientID          string
	timeout           time.Duration
	httpClient        *http.Client
	authToken         string
	requestsPerMinute float64
	burst             int
}

func defaultClientOptions() clientOptions {
	return clientOptions{
		clientID: defaultClientID,
		timeout:  30 * time.Second,
		burst:    5,
	}
}

// WithClientID sets the client identifier sent on every request.
func WithClientID(id string) Option {
	return func(o *clientOptions) {
		if id != "" {
			o.clientID = id
		}
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client, overriding WithTimeout.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithAuthToken seeds the client with a previously obtained auth token,
// skipping the Login exchange. Persisting tokens between runs is the
// caller's responsibility.
func WithAuthToken(token string) Option {
	return func(o *clientOptions) {
		o.authToken = token
	}
}

// WithRateLimit throttles outgoing requests to the given steady-state rate.
// A zero rate disables client-side throttling.
func WithRateLimit(requestsPerMinute float64, burst int) Option {
	return func(o *clientOptions) {
		o.requestsPerMinute = requestsPerMinute
		if burst > 0 {
			o.burst = burst
		}
	}
}
