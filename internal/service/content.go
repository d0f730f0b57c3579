package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/domain"
	"github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/fixtures"
)

var (
	ErrNotConfigured = errors.New("cms not configured")
	ErrEmptyResult   = errors.New("cms returned no documents")
)

type ContentConfig struct {
	Limit   int
	Timeout time.Duration // per CMS call; zero means no extra deadline
}

// ContentService serves site content from the CMS and degrades to the static
// fixtures on any failure. A nil CMS means the CMS is not configured.
type ContentService struct {
	cms     CMS
	podcast PodcastFeed
	logger  *slog.Logger
	config  ContentConfig
}

func NewContentService(cms CMS, podcast PodcastFeed, logger *slog.Logger, cfg ContentConfig) *ContentService {
	if cfg.Limit <= 0 {
		cfg.Limit = 20
	}
	return &ContentService{
		cms:     cms,
		podcast: podcast,
		logger:  logger.With("component", "content"),
		config:  cfg,
	}
}

// Configured reports whether a CMS client was supplied.
func (s *ContentService) Configured() bool {
	return s.cms != nil
}

func (s *ContentService) Articles() []domain.Article             { return fixtures.Articles() }
func (s *ContentService) Videos() []domain.VideoContent          { return fixtures.Videos() }
func (s *ContentService) Podcasts() []domain.PodcastEpisode      { return fixtures.Podcasts() }
func (s *ContentService) LiveEvents() []domain.LiveEvent         { return fixtures.LiveEvents() }
func (s *ContentService) UpcomingEvents() []domain.LiveEvent     { return fixtures.UpcomingEvents() }
func (s *ContentService) Sports() []domain.Sport                 { return fixtures.Sports() }
func (s *ContentService) Sport(slug string) (domain.Sport, bool) { return fixtures.Sport(slug) }

// ArticlesBySport filters the fixture articles by sport tag.
func (s *ContentService) ArticlesBySport(tag string) []domain.Article {
	return filterBySport(fixtures.Articles(), tag)
}

// FetchArticles tries CMS posts, then CMS articles, then the fixtures.
func (s *ContentService) FetchArticles(ctx context.Context) domain.Result[domain.Article] {
	if s.cms == nil {
		return s.fallbackArticles(ErrNotConfigured)
	}

	posts, err := s.fetchArticles(ctx, "post", s.cms.FetchPosts)
	if err != nil {
		return s.fallbackArticles(err)
	}
	if len(posts) > 0 {
		return domain.FromCMS(posts)
	}

	docs, err := s.fetchArticles(ctx, "article", s.cms.FetchArticles)
	if err != nil {
		return s.fallbackArticles(err)
	}
	if len(docs) > 0 {
		return domain.FromCMS(docs)
	}

	return s.fallbackArticles(ErrEmptyResult)
}

// FetchArticlesBySport keeps the origin of the underlying fetch.
func (s *ContentService) FetchArticlesBySport(ctx context.Context, tag string) domain.Result[domain.Article] {
	res := s.FetchArticles(ctx)
	res.Items = filterBySport(res.Items, tag)
	return res
}

func (s *ContentService) FetchFeaturedArticles(ctx context.Context, n int) domain.Result[domain.Article] {
	res := s.FetchArticles(ctx)
	if n >= 0 && n < len(res.Items) {
		res.Items = res.Items[:n]
	}
	return res
}

func (s *ContentService) FetchVideos(ctx context.Context) domain.Result[domain.VideoContent] {
	if s.cms == nil {
		return s.fallbackVideos(ErrNotConfigured)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	videos, err := s.cms.FetchVideos(ctx, s.config.Limit)
	if err != nil {
		return s.fallbackVideos(fmt.Errorf("fetch videos: %w", err))
	}
	if len(videos) == 0 {
		return s.fallbackVideos(ErrEmptyResult)
	}
	return domain.FromCMS(videos)
}

// FetchPodcasts tries the CMS, then the RSS feed, then the fixtures.
func (s *ContentService) FetchPodcasts(ctx context.Context) domain.Result[domain.PodcastEpisode] {
	reason := ErrNotConfigured

	if s.cms != nil {
		cmsCtx, cancel := s.withTimeout(ctx)
		episodes, err := s.cms.FetchPodcasts(cmsCtx, s.config.Limit)
		cancel()

		switch {
		case err != nil:
			reason = fmt.Errorf("fetch podcasts: %w", err)
		case len(episodes) == 0:
			reason = ErrEmptyResult
		default:
			return domain.FromCMS(episodes)
		}
	}

	if s.podcast != nil {
		feedCtx, cancel := s.withTimeout(ctx)
		episodes, err := s.podcast.FetchEpisodes(feedCtx, s.config.Limit)
		cancel()

		if err == nil && len(episodes) > 0 {
			return domain.Result[domain.PodcastEpisode]{Items: episodes, Origin: domain.OriginFeed}
		}
		if err != nil {
			s.logger.Warn("podcast feed failed", "error", err)
		}
	}

	s.logger.Info("serving fixture podcasts", "reason", reason)
	return domain.Fallback(fixtures.Podcasts(), reason)
}

func (s *ContentService) fetchArticles(
	ctx context.Context,
	kind string,
	fetch func(context.Context, int) ([]domain.Article, error),
) ([]domain.Article, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	articles, err := fetch(ctx, s.config.Limit)
	if err != nil {
		return nil, fmt.Errorf("fetch %s documents: %w", kind, err)
	}

	s.logger.Debug("fetched cms documents", "type", kind, "count", len(articles))
	return articles, nil
}

func (s *ContentService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.config.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.config.Timeout)
}

func (s *ContentService) fallbackArticles(reason error) domain.Result[domain.Article] {
	s.logFallback("articles", reason)
	return domain.Fallback(fixtures.Articles(), reason)
}

func (s *ContentService) fallbackVideos(reason error) domain.Result[domain.VideoContent] {
	s.logFallback("videos", reason)
	return domain.Fallback(fixtures.Videos(), reason)
}

func (s *ContentService) logFallback(kind string, reason error) {
	if errors.Is(reason, ErrNotConfigured) {
		s.logger.Debug("serving fixture content", "kind", kind, "reason", reason)
		return
	}
	s.logger.Warn("serving fixture content", "kind", kind, "reason", reason)
}

func filterBySport(articles []domain.Article, tag string) []domain.Article {
	filtered := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if a.HasSportTag(tag) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
