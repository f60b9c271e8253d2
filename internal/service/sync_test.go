package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"video_tagger/internal/domain"
	"video_tagger/internal/service/mocks"
)

type SyncServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	videos      *mocks.MockVideoInfoCache
	api         *mocks.MockTaggingAPI
	credentials *mocks.MockCredentialStore

	service *SyncService
	video   *domain.VideoMetadata
	logger  *slog.Logger
}

func (s *SyncServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.videos = mocks.NewMockVideoInfoCache(s.ctrl)
	s.api = mocks.NewMockTaggingAPI(s.ctrl)
	s.credentials = mocks.NewMockCredentialStore(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.video = &domain.VideoMetadata{
		Bvid:     "BV1",
		Title:    "Go concurrency",
		Cover:    "https://i0.hdslb.com/cover.jpg",
		Duration: 1200,
		Videos:   2,
		Pages: []domain.Segment{
			{Index: 1, Duration: 600},
			{Index: 2, Duration: 600},
		},
		Owner: domain.Owner{Name: "gopher"},
	}

	s.service = NewSyncService(s.videos, s.api, s.credentials, s.logger)
}

func (s *SyncServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SyncServiceTestSuite))
}

func (s *SyncServiceTestSuite) TestSyncTag_BuildsPayloadAndMergesProgress() {
	ctx := context.Background()

	s.videos.EXPECT().Get(ctx, "BV1").Return(s.video, nil)
	s.credentials.EXPECT().Get(ctx).Return("token-1", nil)
	s.api.EXPECT().TagVideo(ctx, "token-1", domain.TagPayload{
		Bvid:            "BV1",
		Title:           "Go concurrency",
		URL:             "https://bilibili.com/video/BV1?p=2",
		Cover:           "https://i0.hdslb.com/cover.jpg",
		Duration:        1200,
		Episodes:        2,
		CurrentEpisode:  2,
		Progress:        58,
		Status:          2,
		Notes:           "",
		OwnerName:       "gopher",
		WatchedDuration: 700,
	}).Return(map[string]any{"id": 7}, nil)

	result, err := s.service.SyncTag(ctx, domain.SyncRequest{
		Bvid:        "BV1",
		Tag:         "已看",
		Part:        2,
		CurrentTime: 100,
	})

	s.NoError(err)
	s.Equal(domain.SyncResult{"id": 7, "totalProgress": 58}, result)
}

func (s *SyncServiceTestSuite) TestSyncTag_DefaultsToFirstPart() {
	ctx := context.Background()

	s.videos.EXPECT().Get(ctx, "BV1").Return(s.video, nil)
	s.credentials.EXPECT().Get(ctx).Return("", nil)
	s.api.EXPECT().TagVideo(ctx, "", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, payload domain.TagPayload) (map[string]any, error) {
			s.Equal(1, payload.CurrentEpisode)
			s.Equal("https://bilibili.com/video/BV1?p=1", payload.URL)
			s.Equal(float64(0), payload.WatchedDuration)
			s.Equal(0, payload.Progress)
			return map[string]any{}, nil
		},
	)

	result, err := s.service.SyncTag(ctx, domain.SyncRequest{Bvid: "BV1", Tag: "待看"})

	s.NoError(err)
	s.Equal(domain.SyncResult{"totalProgress": 0}, result)
}

func (s *SyncServiceTestSuite) TestSyncTag_UpstreamError() {
	ctx := context.Background()
	upstream := &domain.UpstreamError{Code: -1, Message: "bad"}

	s.videos.EXPECT().Get(ctx, "BV1").Return(nil, upstream)

	result, err := s.service.SyncTag(ctx, domain.SyncRequest{Bvid: "BV1", Tag: "收藏"})

	s.Nil(result)
	var target *domain.UpstreamError
	s.True(errors.As(err, &target))
}

func (s *SyncServiceTestSuite) TestSyncTag_APIError() {
	ctx := context.Background()

	s.videos.EXPECT().Get(ctx, "BV1").Return(s.video, nil)
	s.credentials.EXPECT().Get(ctx).Return("t", nil)
	s.api.EXPECT().TagVideo(ctx, "t", gomock.Any()).Return(nil, &domain.ParseError{Op: "decode", Err: errors.New("bad json")})

	_, err := s.service.SyncTag(ctx, domain.SyncRequest{Bvid: "BV1", Part: 1})

	s.Error(err)
	s.Contains(err.Error(), "tag video")
}

func (s *SyncServiceTestSuite) TestSyncTag_CredentialError() {
	ctx := context.Background()

	s.videos.EXPECT().Get(ctx, "BV1").Return(s.video, nil)
	s.credentials.EXPECT().Get(ctx).Return("", errors.New("storage down"))

	_, err := s.service.SyncTag(ctx, domain.SyncRequest{Bvid: "BV1"})

	s.Error(err)
	s.Contains(err.Error(), "read credential")
}

func (s *SyncServiceTestSuite) TestSyncProgress_SmallPayload() {
	ctx := context.Background()

	s.videos.EXPECT().Get(ctx, "BV1").Return(s.video, nil)
	s.credentials.EXPECT().Get(ctx).Return("token-1", nil)
	s.api.EXPECT().SyncProgress(ctx, "token-1", domain.ProgressPayload{
		Bvid:            "BV1",
		CurrentEpisode:  2,
		WatchedDuration: 700,
	}).Return(map[string]any{"ok": true}, nil)

	result, err := s.service.SyncProgress(ctx, domain.SyncRequest{Bvid: "BV1", Part: 2, CurrentTime: 100})

	s.NoError(err)
	s.Equal(domain.SyncResult{"ok": true, "totalProgress": 58}, result)
}

func (s *SyncServiceTestSuite) TestSyncProgress_UpstreamError() {
	ctx := context.Background()

	s.videos.EXPECT().Get(ctx, "BV1").Return(nil, &domain.UpstreamError{Code: -1})

	result, err := s.service.SyncProgress(ctx, domain.SyncRequest{Bvid: "BV1"})

	s.Error(err)
	s.Nil(result)
}

func (s *SyncServiceTestSuite) TestSyncProgress_ZeroDuration() {
	ctx := context.Background()
	video := *s.video
	video.Duration = 0

	s.videos.EXPECT().Get(ctx, "BV1").Return(&video, nil)
	s.credentials.EXPECT().Get(ctx).Return("", nil)
	s.api.EXPECT().SyncProgress(ctx, "", gomock.Any()).Return(map[string]any{}, nil)

	result, err := s.service.SyncProgress(ctx, domain.SyncRequest{Bvid: "BV1", Part: 2, CurrentTime: 100})

	s.NoError(err)
	s.Equal(domain.SyncResult{"totalProgress": 0}, result)
}

func (s *SyncServiceTestSuite) TestGetProgress_NoNetwork() {
	for _, bvid := range []string{"BV1", "", "anything"} {
		marker := s.service.GetProgress(context.Background(), bvid)
		s.Equal(domain.ProgressMarker{Bvid: bvid, Part: 1}, marker)
	}
}
