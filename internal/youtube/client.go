package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"forkful/internal/config"
	"forkful/internal/domain"
	"forkful/internal/duration"
	"forkful/internal/port"
)

const (
	dataAPIBaseURL   = "https://www.googleapis.com/youtube/v3"
	timedTextBaseURL = "https://www.youtube.com/api/timedtext"

	// Data API unit cost of a videos.list call.
	videosListUnits = 1
)

// Client implements port.VideoPlatform against the YouTube Data API v3 plus
// the public timedtext endpoint for captions.
type Client struct {
	apiKey       string
	apiBase      string
	timedTextURL string
	quota        port.QuotaService
	client       *http.Client
}

var _ port.VideoPlatform = (*Client)(nil)

// NewClient creates a YouTube client. The quota collaborator is consulted
// before and charged after every metered call.
func NewClient(cfg *config.YouTubeConfig, quota port.QuotaService) *Client {
	return newClient(cfg, quota, dataAPIBaseURL, timedTextBaseURL)
}

// NewClientWithEndpoints creates a client against custom API endpoints (for
// testing).
func NewClientWithEndpoints(cfg *config.YouTubeConfig, quota port.QuotaService, apiBase, timedTextURL string) *Client {
	return newClient(cfg, quota, apiBase, timedTextURL)
}

func newClient(cfg *config.YouTubeConfig, quota port.QuotaService, apiBase, timedTextURL string) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiKey:       cfg.APIKey,
		apiBase:      apiBase,
		timedTextURL: timedTextURL,
		quota:        quota,
		client:       &http.Client{Timeout: timeout},
	}
}

// VideoMetadata fetches title, description, thumbnail, and duration for one
// video via videos.list.
func (c *Client) VideoMetadata(ctx context.Context, videoID string) (*domain.VideoMetadata, error) {
	if !IsValidVideoID(videoID) {
		return nil, domain.NewExtractionError(domain.ErrInvalidVideoID,
			"not a valid video ID: "+videoID)
	}
	if c.apiKey == "" {
		return nil, domain.NewExtractionError(domain.ErrConfigurationError,
			"youtube API key is not configured")
	}
	if !c.quota.Check(videosListUnits) {
		return nil, domain.NewExtractionError(domain.ErrQuotaExceeded,
			"daily video API budget exhausted, retry tomorrow")
	}

	q := url.Values{}
	q.Set("part", "snippet,contentDetails")
	q.Set("id", videoID)
	q.Set("key", c.apiKey)

	body, err := c.get(ctx, c.apiBase+"/videos?"+q.Encode())
	if err != nil {
		return nil, err
	}
	c.quota.Record(videosListUnits, "videos.list")

	var resp videosListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, domain.NewExtractionError(domain.ErrFetchFailed,
			"decoding videos.list response: "+err.Error())
	}
	if len(resp.Items) == 0 {
		return nil, domain.NewExtractionError(domain.ErrFetchFailed,
			"video not found: "+videoID)
	}

	item := resp.Items[0]
	thumb := item.Snippet.Thumbnails.High.URL
	if thumb == "" {
		thumb = item.Snippet.Thumbnails.Default.URL
	}
	if thumb == "" {
		thumb = ThumbnailURL(videoID)
	}
	return &domain.VideoMetadata{
		VideoID:      videoID,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		ThumbnailURL: thumb,
		Duration:     duration.ParseISO8601(item.ContentDetails.Duration),
		ChannelTitle: item.Snippet.ChannelTitle,
	}, nil
}

// Transcript fetches English caption text from the timedtext endpoint. The
// endpoint is unmetered, but many videos simply have no caption track; the
// caller treats any failure here as optional input.
func (c *Client) Transcript(ctx context.Context, videoID string) (string, error) {
	if !IsValidVideoID(videoID) {
		return "", domain.NewExtractionError(domain.ErrInvalidVideoID,
			"not a valid video ID: "+videoID)
	}

	q := url.Values{}
	q.Set("v", videoID)
	q.Set("lang", "en")

	body, err := c.get(ctx, c.timedTextURL+"?"+q.Encode())
	if err != nil {
		return "", err
	}

	text, err := parseTimedText(body)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", fmt.Errorf("video %s has no caption track", videoID)
	}
	return text, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, domain.NewExtractionError(domain.ErrFetchFailed,
			"building request: "+err.Error())
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, domain.NewExtractionError(domain.ErrTimeout,
				"video platform call exceeded its deadline")
		}
		return nil, domain.NewExtractionError(domain.ErrFetchFailed,
			"calling video platform: "+err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewExtractionError(domain.ErrFetchFailed,
			"reading response: "+err.Error())
	}

	switch {
	case resp.StatusCode == http.StatusForbidden:
		// The platform reports quota exhaustion as 403, not 429.
		return nil, domain.NewExtractionError(domain.ErrQuotaExceeded,
			"video platform quota exceeded")
	case resp.StatusCode != http.StatusOK:
		return nil, domain.NewExtractionError(domain.ErrFetchFailed,
			fmt.Sprintf("video platform error (status %d)", resp.StatusCode))
	}
	return body, nil
}

type videosListResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Thumbnails  struct {
				Default struct {
					URL string `json:"url"`
				} `json:"default"`
				High struct {
					URL string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
			ChannelTitle string `json:"channelTitle"`
		} `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

type timedText struct {
	Texts []struct {
		Value string `xml:",chardata"`
	} `xml:"text"`
}

func parseTimedText(body []byte) (string, error) {
	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return "", fmt.Errorf("decoding timedtext: %w", err)
	}
	parts := make([]string, 0, len(tt.Texts))
	for _, t := range tt.Texts {
		if s := strings.TrimSpace(t.Value); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " "), nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var uerr *url.Error
	return errors.As(err, &uerr) && uerr.Timeout()
}
