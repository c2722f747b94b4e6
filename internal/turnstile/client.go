// Package turnstile integrates the bot-verification collaborator.
// The repo only forwards a challenge response token and checks the verdict.
package turnstile

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultEndpoint is the Cloudflare Turnstile verification endpoint.
const DefaultEndpoint = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// Result is the collaborator's verdict for one token.
type Result struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verifier checks a challenge response token. Satisfied by *Client.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) (Result, error)
}

// Client verifies tokens against the siteverify endpoint.
type Client struct {
	secret     string
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a new verification client. An empty endpoint falls back
// to the Cloudflare production endpoint.
func NewClient(secret, endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		secret:   secret,
		endpoint: endpoint,
		// Bounded timeout: a hung collaborator must not hold the intake
		// request open indefinitely.
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify forwards the token and returns the collaborator's verdict.
// Transport failures are retried exactly once; a delivered verdict is never
// retried. An unparseable response body counts as a failed verdict with no
// codes, matching how the site treated it.
func (c *Client) Verify(ctx context.Context, token, remoteIP string) (Result, error) {
	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}
	encoded := form.Encode()

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(encoded))
		if err != nil {
			return Result{}, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		var result Result
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			result = Result{}
		}
		resp.Body.Close()

		if result.ErrorCodes == nil {
			result.ErrorCodes = []string{}
		}
		return result, nil
	}

	return Result{}, lastErr
}

var _ Verifier = (*Client)(nil)
