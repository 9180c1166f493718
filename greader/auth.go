package greader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const authLinePrefix = "Auth="

// Login performs the ClientLogin credential exchange and stores the
// resulting long-lived auth token on the client. The server answers with
// newline-delimited key=value lines; the token follows the Auth= marker.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", fmt.Errorf("%w: username and password are required", ErrInvalidArgument)
	}

	form := url.Values{}
	form.Set("Email", username)
	form.Set("Passwd", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	c.logger.Debug().Str("username", username).Msg("Performing ClientLogin exchange")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read login response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	for _, line := range strings.Split(string(body), "\n") {
		if !strings.HasPrefix(line, authLinePrefix) {
			continue
		}
		token := strings.TrimSpace(strings.TrimPrefix(line, authLinePrefix))
		c.SetAuthToken(token)
		return token, nil
	}

	return "", fmt.Errorf("login response contained no %s line", authLinePrefix)
}

// FetchPostToken obtains a fresh short-lived post token using the auth
// token and stores it on the client. The request engine calls this
// automatically when a POST is rejected with a stale token; embedders only
// need it to warm the token up front.
func (c *Client) FetchPostToken(ctx context.Context) (string, error) {
	auth := c.AuthToken()
	if auth == "" {
		return "", fmt.Errorf("%w: %w", ErrInvalidArgument, ErrNoAuthToken)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+apiPrefix+"/token", nil)
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Authorization", "GoogleLogin auth="+auth)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read token response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	// The body is the token, verbatim.
	token := string(body)
	c.SetPostToken(token)

	c.logger.Debug().Msg("Obtained fresh post token")
	return token, nil
}
