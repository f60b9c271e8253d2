package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"video_tagger/internal/domain"
)

const DefaultBaseURL = "https://aiolife.top/api/bilibili-video"

type Config struct {
	BaseURL string
	Timeout time.Duration // zero means no client timeout
}

// Client talks to the remote tagging API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger.With("component", "remote_api"),
	}
}

// TagVideo posts a tagging payload to /tagVideo.
func (c *Client) TagVideo(ctx context.Context, token string, payload domain.TagPayload) (map[string]any, error) {
	return c.post(ctx, "/tagVideo", token, payload)
}

// SyncProgress posts a progress payload to /syncProgress.
func (c *Client) SyncProgress(ctx context.Context, token string, payload domain.ProgressPayload) (map[string]any, error) {
	return c.post(ctx, "/syncProgress", token, payload)
}

func (c *Client) post(ctx context.Context, path, token string, payload any) (map[string]any, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{Op: "post " + path, Err: err}
	}
	defer resp.Body.Close()

	// The API reports most failures inside the JSON body, so the status code
	// alone does not decide the outcome.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("unexpected status", "path", path, "status", resp.StatusCode)
	}

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &domain.ParseError{Op: "decode " + path + " response", Err: err}
	}
	if result == nil {
		result = map[string]any{}
	}

	c.logger.Debug("posted", "path", path, "status", resp.StatusCode)

	return result, nil
}
