// Package currencylayer queries the currencylayer live endpoint and hands
// back the response body as one string for the rates parser.
//
// The service meters API calls and rates move slowly, so callers should
// query once for everything they need and keep the result instead of
// querying per currency.
package currencylayer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the live-rates endpoint. Quotes come back against the
// service's default source currency (USD) unless Source overrides it.
const DefaultBaseURL = "http://apilayer.net/api/live"

const maxBodyBytes = 32 << 10

type Client struct {
	// BaseURL may be pointed at a test server or a mirror.
	BaseURL string
	// Source overrides the service's source currency when non-empty.
	// Changing it needs a plan upgrade on the real service.
	Source string

	apiKey     string
	httpClient *http.Client
}

func New(apiKey string) *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

// Live requests current rates, restricted to currencies when non-empty,
// and returns the whole body flattened to a single line. The body is not
// interpreted here; rates.ParseAll and rates.ParseOne consume it.
//
// Failures before the request leaves wrap ErrInvalidRequest. A non-2xx
// reply is a *RemoteError carrying the status code. Send and read
// failures are *TransportError.
func (c *Client) Live(ctx context.Context, currencies []string) (string, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", fmt.Errorf("%w: parse base url %q: %v", ErrInvalidRequest, c.BaseURL, err)
	}

	q := u.Query()
	q.Set("access_key", c.apiKey)
	if len(currencies) > 0 {
		q.Set("currencies", strings.Join(currencies, ","))
	}
	if c.Source != "" {
		q.Set("source", c.Source)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: new request: %v", ErrInvalidRequest, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Op: "do request", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &RemoteError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", &TransportError{Op: "read response body", Err: err}
	}

	return flatten(string(body)), nil
}

// flatten strips line breaks so the body round-trips through one-line
// snapshot files. The live service sends compact JSON anyway.
func flatten(body string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(body)
}
