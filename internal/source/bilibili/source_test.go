package bilibili

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"video_tagger/internal/domain"
)

const viewBody = `{
	"code": 0,
	"message": "0",
	"data": {
		"bvid": "BV1xx411c7mD",
		"title": "Go concurrency, part one",
		"pic": "https://i0.hdslb.com/cover.jpg",
		"duration": 1200,
		"videos": 2,
		"owner": {"mid": 1, "name": "gopher"},
		"pages": [
			{"cid": 10, "page": 1, "part": "intro", "duration": 600},
			{"cid": 11, "page": 2, "part": "channels", "duration": 600}
		]
	}
}`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSource_FetchVideo(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/view", r.URL.Path)
		gotQuery = r.URL.Query().Get("bvid")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, viewBody)
	}))
	defer srv.Close()

	src := New(Config{BaseURL: srv.URL}, testLogger())

	meta, err := src.FetchVideo(context.Background(), "BV1xx411c7mD")
	require.NoError(t, err)

	assert.Equal(t, "BV1xx411c7mD", gotQuery)
	assert.Equal(t, "Go concurrency, part one", meta.Title)
	assert.Equal(t, "https://i0.hdslb.com/cover.jpg", meta.Cover)
	assert.Equal(t, 1200, meta.Duration)
	assert.Equal(t, 2, meta.Videos)
	assert.Equal(t, "gopher", meta.Owner.Name)
	assert.Equal(t, []domain.Segment{
		{Index: 1, Duration: 600, Part: "intro"},
		{Index: 2, Duration: 600, Part: "channels"},
	}, meta.Pages)
}

func TestSource_FetchVideo_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"code":-400,"message":"请求错误","data":null}`)
	}))
	defer srv.Close()

	src := New(Config{BaseURL: srv.URL}, testLogger())

	meta, err := src.FetchVideo(context.Background(), "BVbad")
	assert.Nil(t, meta)

	var upstream *domain.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, -400, upstream.Code)
	assert.Equal(t, "请求错误", upstream.Message)
}

func TestSource_FetchVideo_ParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>bad gateway</html>")
	}))
	defer srv.Close()

	src := New(Config{BaseURL: srv.URL}, testLogger())

	_, err := src.FetchVideo(context.Background(), "BV1")

	var parseErr *domain.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestSource_FetchVideo_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	src := New(Config{BaseURL: srv.URL}, testLogger())

	_, err := src.FetchVideo(context.Background(), "BV1")

	var netErr *domain.NetworkError
	assert.True(t, errors.As(err, &netErr))
}

func TestSource_FetchVideo_MissingPages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"code":0,"data":{"title":"single","duration":90}}`)
	}))
	defer srv.Close()

	src := New(Config{BaseURL: srv.URL}, testLogger())

	meta, err := src.FetchVideo(context.Background(), "BV1")
	require.NoError(t, err)
	assert.Nil(t, meta.Pages)
	assert.Equal(t, "BV1", meta.Bvid)
}
