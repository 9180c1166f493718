// Package greader provides a client for GReader-compatible (Google Reader
// API) RSS/Atom aggregators such as FreshRSS, Miniflux and The Old Reader.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: the API client, owning the credential pair and the request
//     engine with its token-refresh-and-retry protocol
//   - Types: wire records (subscriptions, items, tags, unread counts) with
//     numeric coercion for the decimal-string timestamps the protocol uses
//   - Streams: canonicalization helpers for the three stream ID shapes
//     (feed/<url>, user/-/label/<name>, user/-/state/com.google/<state>)
//   - Errors: structured error types for better error handling
//
// # Authentication
//
// The protocol layers two credentials. The long-lived auth token comes
// from the ClientLogin exchange and rides on every request as an
// Authorization header. The short-lived post token is demanded on mutating
// (POST) requests and expires server-side on an unspecified schedule; the
// client detects the expiry lazily (the server answers 400 or 401),
// refreshes the token and retries the request exactly once. Token
// persistence between runs is the embedder's responsibility: read the pair
// with AuthToken/PostToken, reinject with WithAuthToken or the setters.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := greader.NewClient(
//		"https://rss.example.com/api/greader.php",
//		logger,
//		greader.WithClientID("myapp"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	if _, err := client.Login(ctx, "user", "password"); err != nil {
//		log.Fatal(err)
//	}
//
//	// List unread items of a feed
//	contents, err := client.StreamItems(ctx, "https://example.org/feed.xml",
//		greader.ListOptions{Number: 50, ExcludeTarget: "read"})
//
// # Error Handling
//
// Locally detected precondition failures wrap ErrInvalidArgument and never
// reach the network. Non-success server responses surface as *APIError
// carrying the HTTP status and raw body:
//
//	var apiErr *greader.APIError
//	if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
//		// auth token expired, log in again
//	}
//
// Transport failures propagate wrapped with fmt.Errorf("%w") only and are
// never converted into API errors.
package greader
