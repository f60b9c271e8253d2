package bilibili

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"video_tagger/internal/domain"
)

const (
	SourceID       = "bilibili"
	DefaultBaseURL = "https://api.bilibili.com/x/web-interface"
)

// Config holds Bilibili source configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration // zero means no client timeout
}

// Source fetches video metadata from the Bilibili web interface.
type Source struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// New creates a new Bilibili source.
func New(cfg Config, logger *slog.Logger) *Source {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: baseURL,
		logger:  logger.With("source", SourceID),
	}
}

// FetchVideo fetches metadata for one video. It is not retried.
func (s *Source) FetchVideo(ctx context.Context, bvid string) (*domain.VideoMetadata, error) {
	endpoint := fmt.Sprintf("%s/view?bvid=%s", s.baseURL, url.QueryEscape(bvid))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "VideoTagger/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{Op: "fetch video info", Err: err}
	}
	defer resp.Body.Close()

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, &domain.ParseError{Op: "decode video info", Err: err}
	}

	if apiResp.Code != 0 {
		return nil, &domain.UpstreamError{Code: apiResp.Code, Message: apiResp.Message}
	}

	var view View
	if err := json.Unmarshal(apiResp.Data, &view); err != nil {
		return nil, &domain.ParseError{Op: "decode video data", Err: err}
	}
	if view.Bvid == "" {
		view.Bvid = bvid
	}

	s.logger.Debug("fetched video info",
		"bvid", bvid,
		"pages", len(view.Pages),
		"duration", view.Duration,
	)

	return view.toDomain(), nil
}
