package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"moviegrip/internal/domain"
)

// DefaultBaseURL is the public OMDb endpoint
const DefaultBaseURL = "https://www.omdbapi.com/"

const (
	defaultTimeout       = 10 * time.Second
	defaultMaxConcurrent = 4
	notFoundMessage      = "Movie not found!"
)

// ErrUpstream is returned when the catalog answers but reports a failure
var ErrUpstream = errors.New("catalog error")

// Options configures a Client
type Options struct {
	BaseURL       string
	APIKey        string
	Timeout       time.Duration
	MaxConcurrent int // requests allowed in flight at once
	HTTPClient    *http.Client
	Logger        *zap.Logger
}

// Client searches an OMDb-compatible movie catalog
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	workerPool chan struct{} // Semaphore for limiting concurrent requests
	logger     *zap.Logger
}

// NewClient creates a catalog client
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = defaultMaxConcurrent
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Client{
		baseURL:    opts.BaseURL,
		apiKey:     opts.APIKey,
		httpClient: opts.HTTPClient,
		workerPool: make(chan struct{}, opts.MaxConcurrent),
		logger:     opts.Logger.Named("catalog"),
	}
}

// Search looks up movies whose title matches query, in catalog order.
// An empty query or an unknown title yields an empty result.
// sort is recorded for diagnostics only; ordering is applied by the caller.
func (c *Client) Search(ctx context.Context, query string, sort bool) ([]domain.Movie, error) {
	if query == "" {
		return nil, nil
	}

	// Acquire worker slot
	select {
	case c.workerPool <- struct{}{}:
		defer func() { <-c.workerPool }()
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	reqURL, err := c.searchURL(query)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("catalog request", zap.String("query", query), zap.Bool("sort", sort))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}

	var payload searchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	if !strings.EqualFold(payload.Response, "True") {
		if payload.Error == notFoundMessage {
			c.logger.Debug("catalog has no matches", zap.String("query", query))
			return []domain.Movie{}, nil
		}
		msg := payload.Error
		if msg == "" {
			msg = "request was not successful"
		}
		return nil, fmt.Errorf("%w: %s", ErrUpstream, msg)
	}

	movies := mapSearchResults(payload.Search)
	c.logger.Debug("catalog response",
		zap.String("query", query),
		zap.Int("results", len(movies)),
		zap.String("total", payload.TotalResults))
	return movies, nil
}

func (c *Client) searchURL(query string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid catalog base url %q: %w", c.baseURL, err)
	}
	q := u.Query()
	if c.apiKey != "" {
		q.Set("apikey", c.apiKey)
	}
	q.Set("s", query)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// mapSearchResults converts OMDb entries, preserving their order
func mapSearchResults(items []searchItem) []domain.Movie {
	movies := make([]domain.Movie, 0, len(items))
	for _, item := range items {
		poster := item.Poster
		if poster == "N/A" {
			poster = ""
		}
		movies = append(movies, domain.Movie{
			ID:     item.ImdbID,
			Title:  item.Title,
			Year:   item.Year,
			Type:   item.Type,
			Poster: poster,
		})
	}
	return movies
}
