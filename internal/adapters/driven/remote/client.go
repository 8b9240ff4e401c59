// Package remote implements driven.RecordFetcher against the admin HTTP API.
package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/searchfield/internal/core/domain"
	"github.com/custodia-labs/searchfield/internal/core/ports/driven"
	"github.com/custodia-labs/searchfield/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.RecordFetcher = (*Client)(nil)

// maxBodySize bounds how much of a response body is read.
const maxBodySize = 8 << 20

// Config configures the API client.
type Config struct {
	// BaseURL resolves relative endpoints.
	BaseURL string

	// Token is sent as a bearer token when non-empty.
	Token string

	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration

	// RequestsPerSecond throttles requests. Zero disables throttling.
	RequestsPerSecond float64

	// Burst is the token bucket size. Defaults to 1.
	Burst int
}

// ConfigFromSettings builds a Config from file settings.
func ConfigFromSettings(api domain.APISettings) Config {
	return Config{
		BaseURL:           api.BaseURL,
		Token:             api.Token,
		Timeout:           api.Timeout(),
		RequestsPerSecond: api.RequestsPerSecond,
		Burst:             api.Burst,
	}
}

// Client fetches search records over HTTP.
type Client struct {
	base    *url.URL
	http    *http.Client
	limiter *rate.Limiter
}

// New creates a client.
func New(cfg Config) (*Client, error) {
	var base *url.URL
	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("parse base url: %w", err)
		}
		base = u
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	if cfg.Token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: cfg.Token,
			TokenType:   "Bearer",
		}))
		httpClient.Timeout = cfg.Timeout
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &Client{base: base, http: httpClient, limiter: limiter}, nil
}

// RequestURL returns the URL fetched for req:
// {URL}?{SearchParam}={Text}&{SizeParam}={Size}, resolved against the base URL.
func (c *Client) RequestURL(req driven.SearchRequest) (string, error) {
	target, err := url.Parse(req.URL)
	if err != nil {
		return "", fmt.Errorf("parse endpoint %q: %w", req.URL, err)
	}
	if c.base != nil && !target.IsAbs() {
		target = c.base.ResolveReference(target)
	}

	searchParam := req.SearchParam
	if searchParam == "" {
		searchParam = domain.DefaultSearchParam
	}
	sizeParam := req.SizeParam
	if sizeParam == "" {
		sizeParam = domain.DefaultSizeParam
	}

	query := url.QueryEscape(searchParam) + "=" + url.QueryEscape(req.Text)
	if req.Size > 0 {
		query += "&" + url.QueryEscape(sizeParam) + "=" + strconv.Itoa(req.Size)
	}
	if target.RawQuery != "" {
		target.RawQuery += "&" + query
	} else {
		target.RawQuery = query
	}
	return target.String(), nil
}

// Fetch runs the search and returns the records array of the response.
func (c *Client) Fetch(ctx context.Context, req driven.SearchRequest) ([]domain.RawRecord, error) {
	if strings.TrimSpace(req.URL) == "" {
		return nil, domain.ErrNoSource
	}
	endpoint, err := c.RequestURL(req)
	if err != nil {
		return nil, err
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrNetworkFailure, err)
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	logger.Debug("GET %s", endpoint)
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", domain.ErrNetworkFailure, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrNetworkFailure, err)
	}
	return parseRecords(body)
}

// parseRecords extracts the objects of the top-level records array.
// Non-object elements are skipped.
func parseRecords(body []byte) ([]domain.RawRecord, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: invalid JSON", domain.ErrResponseShape)
	}
	records := gjson.GetBytes(body, "records")
	if !records.IsArray() {
		return nil, fmt.Errorf("%w: no records array", domain.ErrResponseShape)
	}

	out := make([]domain.RawRecord, 0, len(records.Array()))
	records.ForEach(func(_, value gjson.Result) bool {
		if obj, ok := value.Value().(map[string]interface{}); ok {
			out = append(out, domain.RawRecord(obj))
		} else {
			logger.Debug("Skipping non-object record: %s", value.Raw)
		}
		return true
	})
	return out, nil
}
