// Package maps is the HTTP client for the Google Maps Platform web
// services. It owns credential attachment, transport and remote error
// classification, and the wire types the commands render. Every command
// talks to the remote APIs through this package and nothing else.
package maps

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/msalah0e/gmaps/internal/apierr"
)

// BaseURL is the Google Maps Platform web service root. Tests and the
// GMAPS_BASE_URL environment variable point the client elsewhere.
const BaseURL = "https://maps.googleapis.com/maps/api"

const (
	defaultTimeout = 10 * time.Second

	// next_page_token takes a moment to become valid upstream.
	pageTokenDelay = 2 * time.Second
)

// Google status values shared across endpoints.
const (
	StatusOK          = "OK"
	StatusZeroResults = "ZERO_RESULTS"
)

// Client dispatches requests for a single API key. The zero value is not
// usable; construct with New.
type Client struct {
	key       string
	baseURL   string
	httpc     *http.Client
	retry     bool
	pageDelay time.Duration
}

// Option adjusts a Client at construction time.
type Option func(*Client)

// WithBaseURL points the client at a different service root, mainly for
// tests and local stubs.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithTimeout caps the wall time of a single dispatch attempt.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpc.Timeout = d }
}

// WithRetry enables or disables the single retry on transport failure.
func WithRetry(enabled bool) Option {
	return func(c *Client) { c.retry = enabled }
}

// New returns a client that signs every request with key.
func New(key string, opts ...Option) *Client {
	c := &Client{
		key:       key,
		baseURL:   BaseURL,
		httpc:     &http.Client{Timeout: defaultTimeout},
		retry:     true,
		pageDelay: pageTokenDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// statusEnvelope is the slice of every response body the dispatcher
// itself inspects. Endpoint decoding happens on the same bytes afterwards.
type statusEnvelope struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`

	// The Time Zone API alone spells the detail field in camelCase.
	CamelErrorMessage string `json:"errorMessage"`
}

// do runs one request round trip and returns the raw body on success.
// The API key is attached here and nowhere else.
func (c *Client) do(req Request) ([]byte, error) {
	q := url.Values{}
	for k, vs := range req.Params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("key", c.key)

	resp, err := c.get(c.baseURL + string(req.Endpoint) + "?" + q.Encode())
	if err != nil {
		return nil, apierr.Wrap(apierr.Network, err, "request failed")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, apierr.New(apierr.Unauthorized, "API key rejected (HTTP %d)", resp.StatusCode)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, apierr.New(apierr.RateLimited, "rate limited (HTTP %d)", resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, apierr.New(apierr.Remote, "remote service returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierr.Wrap(apierr.Network, err, "read response")
	}

	var env statusEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, apierr.Wrap(apierr.Remote, err, "malformed response body")
	}
	if err := checkStatus(env); err != nil {
		return nil, err
	}
	return body, nil
}

// get issues the GET, retrying once on a transport-level failure when
// retries are on. HTTP-level errors are never retried; rate limits in
// particular are surfaced so the caller can back off deliberately.
func (c *Client) get(url string) (*http.Response, error) {
	resp, err := c.httpc.Get(url)
	if err == nil || !c.retry {
		return resp, err
	}
	return c.httpc.Get(url)
}

// checkStatus maps the status field of a 200 response onto the error
// taxonomy. A well-formed body with a non-OK status is still a failure.
func checkStatus(env statusEnvelope) error {
	switch env.Status {
	case StatusOK, StatusZeroResults:
		return nil
	}
	return statusError(env)
}

// statusError classifies a non-passing status. The Time Zone endpoint
// also routes ZERO_RESULTS through here, which only that API treats as
// a failure.
func statusError(env statusEnvelope) error {
	switch env.Status {
	case "":
		return apierr.New(apierr.Remote, "malformed response: missing status")
	case "REQUEST_DENIED":
		return apierr.New(apierr.Unauthorized, "API error (%s): %s", env.Status, errMessage(env))
	case "OVER_QUERY_LIMIT", "OVER_DAILY_LIMIT", "RESOURCE_EXHAUSTED":
		return apierr.New(apierr.RateLimited, "API error (%s): %s", env.Status, errMessage(env))
	case "INVALID_REQUEST", "NOT_FOUND", "MAX_WAYPOINTS_EXCEEDED",
		"MAX_ELEMENTS_EXCEEDED", "MAX_ROUTE_LENGTH_EXCEEDED":
		return apierr.New(apierr.InvalidRequest, "API error (%s): %s", env.Status, errMessage(env))
	default:
		return apierr.New(apierr.Remote, "API error (%s): %s", env.Status, errMessage(env))
	}
}

func errMessage(env statusEnvelope) string {
	if env.ErrorMessage != "" {
		return env.ErrorMessage
	}
	if env.CamelErrorMessage != "" {
		return env.CamelErrorMessage
	}
	return "unknown error"
}
