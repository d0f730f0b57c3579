package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/domain"
)

// CMS is the headless content source, already mapped onto domain types.
type CMS interface {
	FetchPosts(ctx context.Context, limit int) ([]domain.Article, error)
	FetchArticles(ctx context.Context, limit int) ([]domain.Article, error)
	FetchVideos(ctx context.Context, limit int) ([]domain.VideoContent, error)
	FetchPodcasts(ctx context.Context, limit int) ([]domain.PodcastEpisode, error)
}

type PodcastFeed interface {
	FetchEpisodes(ctx context.Context, limit int) ([]domain.PodcastEpisode, error)
}

type ArticleStore interface {
	Upsert(ctx context.Context, article *domain.Article) (int64, error)
	GetExistingByCMSIDs(ctx context.Context, ids []string) (map[string]time.Time, error)
}

type TagStore interface {
	UpsertBatch(ctx context.Context, labels []string) (map[string]int64, error)
	LinkToArticle(ctx context.Context, articleID int64, tagIDs []int64) error
}

type SyncStateStore interface {
	Get(ctx context.Context, sourceID string) (*domain.SyncState, error)
	Update(ctx context.Context, state *domain.SyncState) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, article *domain.Article, isNew bool) error
	Close() error
}
