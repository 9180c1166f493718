package greader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// requestSpec describes one logical API call. It is built by the endpoint
// methods and consumed by do; nothing outside a single call holds one.
type requestSpec struct {
	method string
	path   string
	params url.Values
	// noAuth skips the Authorization header (only the login exchange).
	noAuth bool
	// retried marks the second attempt after a post token refresh; it caps
	// the refresh-and-retry protocol at one round.
	retried bool
}

// do executes one API call: encodes parameters per HTTP method, attaches
// credentials, dispatches, and classifies the response.
//
// A 400 or 401 on a first-attempt POST is treated as a stale post token:
// the token is refreshed and the identical request re-issued exactly once.
// The server reports both statuses for an expired token, so a 400 caused
// by a genuinely bad parameter burns one refresh cycle before surfacing.
// Refresh failures and second-attempt failures propagate unmasked.
func (c *Client) do(ctx context.Context, r requestSpec) ([]byte, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("client", c.clientID)

	var body io.Reader
	if r.method == http.MethodGet {
		for k, vs := range r.params {
			query[k] = vs
		}
		// Cache-busting nonce and fixed output format marker.
		query.Set("ck", nonceMsec())
		query.Set("output", "json")
	} else {
		form := url.Values{}
		for k, vs := range r.params {
			form[k] = vs
		}
		if t := c.PostToken(); t != "" {
			form.Set("T", t)
		}
		body = strings.NewReader(form.Encode())
	}

	requestURL := c.baseURL + r.path + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, r.method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if r.method == http.MethodPost {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if !r.noAuth {
		if t := c.AuthToken(); t != "" {
			req.Header.Set("Authorization", "GoogleLogin auth="+t)
		}
	}

	c.logger.Debug().
		Str("method", r.method).
		Str("path", r.path).
		Bool("retry", r.retried).
		Msg("GReader API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return respBody, nil
	}

	if r.method == http.MethodPost && !r.retried &&
		(resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized) {
		c.logger.Debug().
			Int("status", resp.StatusCode).
			Str("path", r.path).
			Msg("Post token rejected, refreshing")
		if _, err := c.FetchPostToken(ctx); err != nil {
			return nil, err
		}
		r.retried = true
		return c.do(ctx, r)
	}

	return nil, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
}

// getJSON issues a GET and decodes the JSON response into v.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, v any) error {
	body, err := c.do(ctx, requestSpec{method: http.MethodGet, path: path, params: params})
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse response from %s: %w", path, err)
	}
	return nil
}

// post issues a POST and returns the raw response text. Mutation endpoints
// answer with a bare "OK" on success.
func (c *Client) post(ctx context.Context, path string, params url.Values) (string, error) {
	body, err := c.do(ctx, requestSpec{method: http.MethodPost, path: path, params: params})
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func unmarshalBody(body string, v any) error {
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func errMissingStream() error {
	return fmt.Errorf("%w: stream identifier is required", ErrInvalidArgument)
}
