package sanity

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	client := New(Config{
		ProjectID:      "proj1",
		Dataset:        "production",
		APIVersion:     "2024-01-01",
		Token:          "secret",
		Timeout:        2 * time.Second,
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		BaseURL:        server.URL,
	}, logger)

	return client, server
}

func TestClient_FetchPosts(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2024-01-01/data/query/production", r.URL.Path)
		assert.Equal(t, PostsQuery, r.URL.Query().Get("query"))
		assert.Equal(t, "5", r.URL.Query().Get("$limit"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":[{
			"_id":"post-1",
			"title":"Goalball Nationals",
			"slug":{"current":"goalball-nationals"},
			"publishedAt":"2024-06-01T12:00:00Z",
			"mainImage":{"asset":{"_ref":"image-abc123-800x450-png"}},
			"body":[{"_type":"block","children":[{"_type":"span","text":"Nationals begin."}]}],
			"author":{"name":"Jo"},
			"sportTags":["goalball"]
		}]}`))
	})

	articles, err := client.FetchPosts(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, articles, 1)

	assert.Equal(t, "Goalball Nationals", articles[0].Title)
	assert.Equal(t, "https://cdn.sanity.io/images/proj1/production/abc123-800x450.png", articles[0].Image)
	assert.Equal(t, "/news/goalball-nationals", articles[0].URL)
	assert.Equal(t, "Nationals begin.", articles[0].Excerpt)
}

func TestClient_EmptyResult(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":null}`))
	})

	articles, err := client.FetchArticles(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"result":[{"_id":"v1","title":"Para Athletics","views":42}]}`))
	})

	videos, err := client.FetchVideos(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "42", videos[0].Views)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_GivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.FetchPodcasts(context.Background(), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.FetchPosts(context.Background(), 10)
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_MalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result": "nope"}`))
	})

	_, err := client.FetchPosts(context.Background(), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode result")
}

func TestNew_DerivesHostFromProject(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	api := New(Config{ProjectID: "proj1", APIVersion: "2024-01-01"}, logger)
	assert.Equal(t, "https://proj1.api.sanity.io/v2024-01-01/data/query/production", api.baseURL)

	cdn := New(Config{ProjectID: "proj1", Dataset: "staging", APIVersion: "2024-01-01", UseCDN: true}, logger)
	assert.Equal(t, "https://proj1.apicdn.sanity.io/v2024-01-01/data/query/staging", cdn.baseURL)
	assert.Equal(t, "staging", cdn.Images().Dataset)
}
