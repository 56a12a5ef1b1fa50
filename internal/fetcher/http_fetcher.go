// Package fetcher retrieves raw page content for the extraction pipeline.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"forkful/internal/config"
	"forkful/internal/domain"
	"forkful/internal/port"
)

const userAgent = "forkful-extractor/1.0 (+server)"

// HTTPFetcher implements port.ContentFetcher over a plain HTTP client.
type HTTPFetcher struct {
	client       *http.Client
	maxBodyBytes int64
}

var _ port.ContentFetcher = (*HTTPFetcher)(nil)

// New creates an HTTPFetcher from config.
func New(cfg *config.FetcherConfig) *HTTPFetcher {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	maxBytes := cfg.MaxBodyBytes
	if maxBytes == 0 {
		maxBytes = 5 * 1024 * 1024
	}
	return &HTTPFetcher{
		client:       &http.Client{Timeout: timeout},
		maxBodyBytes: maxBytes,
	}
}

// Fetch GETs the page and returns its body as a string. Failures come back as
// typed extraction errors: TIMEOUT for deadline expiry, FETCH_FAILED for
// everything else.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", domain.NewExtractionError(domain.ErrInvalidURL, "building request: "+err.Error())
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", domain.NewExtractionError(domain.ErrTimeout,
				"page fetch exceeded its deadline")
		}
		return "", domain.NewExtractionError(domain.ErrFetchFailed,
			"fetching page: "+err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", domain.NewExtractionError(domain.ErrFetchFailed,
			fmt.Sprintf("page returned HTTP %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes))
	if err != nil {
		return "", domain.NewExtractionError(domain.ErrFetchFailed,
			"reading page body: "+err.Error())
	}
	return string(body), nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var uerr *url.Error
	return errors.As(err, &uerr) && uerr.Timeout()
}
