package sanity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/domain"
)

const SourceID = "sanity"

const (
	PostsQuery = `*[_type == "post" && defined(slug.current)] | order(publishedAt desc)[0...$limit]{
  _id, _createdAt, _updatedAt, title, slug, publishedAt, body, sportTags,
  mainImage{asset->{url, _ref}},
  author->{name},
  categories[]->{title}
}`

	ArticlesQuery = `*[_type == "article"] | order(publishedAt desc)[0...$limit]{
  _id, _createdAt, _updatedAt, title, slug, excerpt, publishedAt, body, author, category, tags,
  image{asset->{url, _ref}}
}`

	VideosQuery = `*[_type == "video"] | order(publishedAt desc)[0...$limit]{
  _id, _createdAt, title, slug, description, duration, views, publishedAt, category,
  thumbnail{asset->{url, _ref}}
}`

	PodcastsQuery = `*[_type == "podcast"] | order(publishedAt desc)[0...$limit]{
  _id, _createdAt, title, slug, description, duration, publishedAt, host, audioUrl,
  coverImage{asset->{url, _ref}}
}`
)

// Config holds Sanity client configuration.
type Config struct {
	ProjectID      string
	Dataset        string
	APIVersion     string
	Token          string
	UseCDN         bool
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration

	// BaseURL overrides the host derived from ProjectID.
	BaseURL string
}

// StatusError is returned for non-200 responses.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %d", e.StatusCode)
}

func (e *StatusError) retryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// Client queries the Sanity content API and maps documents onto domain types.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	transformer    *Transformer
	logger         *slog.Logger
}

// New creates a new Sanity client.
func New(cfg Config, logger *slog.Logger) *Client {
	logger = logger.With("source", SourceID)

	baseURL := cfg.BaseURL
	if baseURL == "" {
		host := "api.sanity.io"
		if cfg.UseCDN {
			host = "apicdn.sanity.io"
		}
		baseURL = fmt.Sprintf("https://%s.%s", cfg.ProjectID, host)
	}

	dataset := cfg.Dataset
	if dataset == "" {
		dataset = "production"
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        fmt.Sprintf("%s/v%s/data/query/%s", baseURL, cfg.APIVersion, dataset),
		token:          cfg.Token,
		maxAttempts:    maxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		transformer: NewTransformer(&ImageResolver{
			ProjectID: cfg.ProjectID,
			Dataset:   dataset,
			Logger:    logger,
		}),
		logger: logger,
	}
}

// ID returns the source identifier.
func (c *Client) ID() string {
	return SourceID
}

// Images exposes the resolver the client transforms with.
func (c *Client) Images() *ImageResolver {
	return c.transformer.Images
}

// FetchPosts fetches `post` documents as articles.
func (c *Client) FetchPosts(ctx context.Context, limit int) ([]domain.Article, error) {
	var posts []Post
	if err := c.query(ctx, PostsQuery, limit, &posts); err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}

	articles := make([]domain.Article, 0, len(posts))
	for _, p := range posts {
		articles = append(articles, c.transformer.PostToArticle(p))
	}
	return articles, nil
}

// FetchArticles fetches `article` documents.
func (c *Client) FetchArticles(ctx context.Context, limit int) ([]domain.Article, error) {
	var docs []CMSArticle
	if err := c.query(ctx, ArticlesQuery, limit, &docs); err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}

	articles := make([]domain.Article, 0, len(docs))
	for _, a := range docs {
		articles = append(articles, c.transformer.ArticleToArticle(a))
	}
	return articles, nil
}

func (c *Client) FetchVideos(ctx context.Context, limit int) ([]domain.VideoContent, error) {
	var docs []Video
	if err := c.query(ctx, VideosQuery, limit, &docs); err != nil {
		return nil, fmt.Errorf("query videos: %w", err)
	}

	videos := make([]domain.VideoContent, 0, len(docs))
	for _, v := range docs {
		videos = append(videos, c.transformer.VideoToContent(v))
	}
	return videos, nil
}

func (c *Client) FetchPodcasts(ctx context.Context, limit int) ([]domain.PodcastEpisode, error) {
	var docs []Podcast
	if err := c.query(ctx, PodcastsQuery, limit, &docs); err != nil {
		return nil, fmt.Errorf("query podcasts: %w", err)
	}

	episodes := make([]domain.PodcastEpisode, 0, len(docs))
	for _, p := range docs {
		episodes = append(episodes, c.transformer.PodcastToEpisode(p))
	}
	return episodes, nil
}

func (c *Client) query(ctx context.Context, groq string, limit int, dest any) error {
	params := url.Values{}
	params.Set("query", groq)
	params.Set("$limit", strconv.Itoa(limit))
	reqURL := c.baseURL + "?" + params.Encode()

	var err error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		err = c.doRequest(ctx, reqURL, dest)
		if err == nil {
			return nil
		}

		var statusErr *StatusError
		if errors.As(err, &statusErr) && !statusErr.retryable() {
			return err
		}

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	return fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
}

func (c *Client) doRequest(ctx context.Context, reqURL string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "DSCContent/1.0")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{StatusCode: resp.StatusCode}
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, dest); err != nil {
		return fmt.Errorf("decode result: %w", err)
	}

	c.logger.Debug("query completed", "bytes", len(envelope.Result))
	return nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
