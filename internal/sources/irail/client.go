package irail

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the public iRail API endpoint.
	DefaultBaseURL = "https://api.irail.be"

	// DefaultTimeout is the HTTP request timeout.
	DefaultTimeout = 15 * time.Second

	// DefaultRequestsPerSecond is the proactive throttle rate. iRail's
	// fair-use policy allows bursts but sustained traffic should stay low.
	DefaultRequestsPerSecond = 3
)

// Config holds iRail client settings. Zero values fall back to defaults.
type Config struct {
	BaseURL           string
	UserAgent         string
	RequestsPerSecond float64

	// HTTPClient overrides the HTTP client. Used in tests.
	HTTPClient *http.Client
}

// Client is a throttled iRail API client shared by the stop and bus sources.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
}

// NewClient creates an iRail API client.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = DefaultRequestsPerSecond
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL:   baseURL,
		userAgent: cfg.UserAgent,
		http:      httpClient,
		limiter:   rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// getJSON performs a throttled GET against path and decodes the JSON
// response into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("requesting %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

// stationID maps a numeric stop ID onto the iRail station identifier,
// e.g. 8892007 -> "BE.NMBS.008892007".
func stationID(id int) string {
	return fmt.Sprintf("BE.NMBS.%09d", id)
}
