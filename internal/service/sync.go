package service

import (
	"context"
	"fmt"
	"log/slog"

	"video_tagger/internal/domain"
	"video_tagger/internal/progress"
)

// SyncService relays tagging and progress updates to the remote API.
type SyncService struct {
	videos      VideoInfoCache
	api         TaggingAPI
	credentials CredentialStore
	logger      *slog.Logger
}

func NewSyncService(
	videos VideoInfoCache,
	api TaggingAPI,
	credentials CredentialStore,
	logger *slog.Logger,
) *SyncService {
	return &SyncService{
		videos:      videos,
		api:         api,
		credentials: credentials,
		logger:      logger.With("component", "sync_service"),
	}
}

type computed struct {
	video   *domain.VideoMetadata
	part    int
	watched float64
	percent int
}

func (s *SyncService) compute(ctx context.Context, req domain.SyncRequest) (*computed, error) {
	video, err := s.videos.Get(ctx, req.Bvid)
	if err != nil {
		return nil, fmt.Errorf("fetch video info: %w", err)
	}

	part := req.Part.OrFirst()
	watched := progress.WatchedSeconds(video.Pages, part, req.CurrentTime)

	return &computed{
		video:   video,
		part:    part,
		watched: watched,
		percent: progress.Percentage(watched, video.Duration),
	}, nil
}

// SyncTag tags a video and reports the watch progress along with it.
func (s *SyncService) SyncTag(ctx context.Context, req domain.SyncRequest) (domain.SyncResult, error) {
	s.logger.Info("syncing tag", "bvid", req.Bvid, "tag", req.Tag, "p", req.Part)

	c, err := s.compute(ctx, req)
	if err != nil {
		s.logger.Error("sync tag failed", "bvid", req.Bvid, "error", err)
		return nil, err
	}

	payload := domain.TagPayload{
		Bvid:            req.Bvid,
		Title:           c.video.Title,
		URL:             fmt.Sprintf("%s%s?p=%d", domain.VideoURLPrefix, req.Bvid, c.part),
		Cover:           c.video.Cover,
		Duration:        c.video.Duration,
		Episodes:        c.video.Videos,
		CurrentEpisode:  c.part,
		Progress:        c.percent,
		Status:          domain.TagStatus,
		Notes:           "",
		OwnerName:       c.video.Owner.Name,
		WatchedDuration: c.watched,
	}

	token, err := s.credentials.Get(ctx)
	if err != nil {
		s.logger.Error("sync tag failed", "bvid", req.Bvid, "error", err)
		return nil, fmt.Errorf("read credential: %w", err)
	}

	resp, err := s.api.TagVideo(ctx, token, payload)
	if err != nil {
		s.logger.Error("sync tag failed", "bvid", req.Bvid, "error", err)
		return nil, fmt.Errorf("tag video: %w", err)
	}

	s.logger.Info("tag synced", "bvid", req.Bvid, "progress", c.percent, "watched", c.watched)

	return domain.MergeProgress(resp, c.percent), nil
}

// SyncProgress reports how far into the video the viewer is.
func (s *SyncService) SyncProgress(ctx context.Context, req domain.SyncRequest) (domain.SyncResult, error) {
	s.logger.Info("syncing progress", "bvid", req.Bvid, "p", req.Part, "current_time", req.CurrentTime)

	c, err := s.compute(ctx, req)
	if err != nil {
		s.logger.Error("sync progress failed", "bvid", req.Bvid, "error", err)
		return nil, err
	}

	token, err := s.credentials.Get(ctx)
	if err != nil {
		s.logger.Error("sync progress failed", "bvid", req.Bvid, "error", err)
		return nil, fmt.Errorf("read credential: %w", err)
	}

	resp, err := s.api.SyncProgress(ctx, token, domain.ProgressPayload{
		Bvid:            req.Bvid,
		CurrentEpisode:  c.part,
		WatchedDuration: c.watched,
	})
	if err != nil {
		s.logger.Error("sync progress failed", "bvid", req.Bvid, "error", err)
		return nil, fmt.Errorf("sync progress: %w", err)
	}

	return domain.MergeProgress(resp, c.percent), nil
}

// GetProgress does not consult the remote API; remote progress lookup is
// disabled and every video starts from part 1.
func (s *SyncService) GetProgress(_ context.Context, bvid string) domain.ProgressMarker {
	s.logger.Debug("get progress skipped", "bvid", bvid)
	return domain.ProgressMarker{Bvid: bvid, Part: 1}
}
