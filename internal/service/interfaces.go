package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"video_tagger/internal/domain"
)

type VideoInfoCache interface {
	Get(ctx context.Context, bvid string) (*domain.VideoMetadata, error)
}

type TaggingAPI interface {
	TagVideo(ctx context.Context, token string, payload domain.TagPayload) (map[string]any, error)
	SyncProgress(ctx context.Context, token string, payload domain.ProgressPayload) (map[string]any, error)
}

type CredentialStore interface {
	Get(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
}
