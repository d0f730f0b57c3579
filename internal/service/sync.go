package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/config"
	"github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/domain"
)

const MirrorSourceID = "sanity"

// SyncService mirrors CMS articles into the relational store and announces
// new or changed ones on the broker.
type SyncService struct {
	cms       CMS
	articles  ArticleStore
	tags      TagStore
	syncState SyncStateStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
	config    config.SyncConfig
}

func NewSyncService(
	cms CMS,
	articles ArticleStore,
	tags TagStore,
	syncState SyncStateStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	return &SyncService{
		cms:       cms,
		articles:  articles,
		tags:      tags,
		syncState: syncState,
		txManager: txManager,
		publisher: publisher,
		logger:    logger.With("source", MirrorSourceID),
		config:    cfg,
	}
}

func (s *SyncService) Sync(ctx context.Context) (*domain.SyncStats, error) {
	startTime := time.Now()
	s.logger.Info("starting sync", "limit", s.config.Limit)

	posts, err := s.cms.FetchPosts(ctx, s.config.Limit)
	if err != nil {
		return nil, fmt.Errorf("fetch posts: %w", err)
	}
	docs, err := s.cms.FetchArticles(ctx, s.config.Limit)
	if err != nil {
		return nil, fmt.Errorf("fetch articles: %w", err)
	}
	articles := append(posts, docs...)

	s.logger.Info("fetched documents from cms", "posts", len(posts), "articles", len(docs))

	toSync, err := s.filterForSync(ctx, articles)
	if err != nil {
		return nil, fmt.Errorf("filter for sync: %w", err)
	}

	s.logger.Info("articles to sync", "count", len(toSync))

	stats := &domain.SyncStats{
		SourceID: MirrorSourceID,
		Fetched:  len(articles),
		Skipped:  len(articles) - len(toSync),
	}

	var lastID string
	for i := range toSync {
		article := &toSync[i]
		isNew, err := s.saveArticle(ctx, article)
		if err != nil {
			s.logger.Warn("failed to save article", "cms_id", article.ID, "error", err)
			stats.Errors++
			continue
		}
		lastID = article.ID

		if s.publisher != nil {
			if err := s.publisher.Publish(ctx, article, isNew); err != nil {
				s.logger.Warn("failed to publish article", "cms_id", article.ID, "error", err)
				stats.Errors++
			} else {
				stats.Published++
			}
		}

		if isNew {
			stats.New++
		} else {
			stats.Updated++
		}
	}

	if err := s.updateSyncState(ctx, stats, lastID); err != nil {
		return stats, fmt.Errorf("update sync state: %w", err)
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("sync completed",
		"new", stats.New,
		"updated", stats.Updated,
		"skipped", stats.Skipped,
		"errors", stats.Errors,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	return stats, nil
}

// filterForSync keeps documents that are unknown or changed since stored.
func (s *SyncService) filterForSync(ctx context.Context, articles []domain.Article) ([]domain.Article, error) {
	if len(articles) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(articles))
	for _, a := range articles {
		if a.ID != "" {
			ids = append(ids, a.ID)
		}
	}

	existing, err := s.articles.GetExistingByCMSIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	var toSync []domain.Article
	for _, article := range articles {
		if article.ID == "" {
			continue
		}
		storedAt, exists := existing[article.ID]
		if !exists || article.UpdatedAt.After(storedAt) {
			toSync = append(toSync, article)
		}
	}

	return toSync, nil
}

func (s *SyncService) saveArticle(ctx context.Context, article *domain.Article) (bool, error) {
	existing, err := s.articles.GetExistingByCMSIDs(ctx, []string{article.ID})
	if err != nil {
		return false, err
	}
	isNew := len(existing) == 0

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		articleID, err := s.articles.Upsert(txCtx, article)
		if err != nil {
			return fmt.Errorf("upsert article: %w", err)
		}

		ids, err := s.tags.UpsertBatch(txCtx, article.SportTags)
		if err != nil {
			return fmt.Errorf("upsert tags: %w", err)
		}

		tagIDs := make([]int64, 0, len(article.SportTags))
		for _, label := range article.SportTags {
			if id, ok := ids[label]; ok {
				tagIDs = append(tagIDs, id)
			}
		}

		if err := s.tags.LinkToArticle(txCtx, articleID, tagIDs); err != nil {
			return fmt.Errorf("link tags: %w", err)
		}

		return nil
	})

	return isNew, err
}

func (s *SyncService) updateSyncState(ctx context.Context, stats *domain.SyncStats, lastID string) error {
	state, err := s.syncState.Get(ctx, MirrorSourceID)
	if err != nil {
		return err
	}

	state.SourceID = MirrorSourceID
	state.LastSyncedAt = time.Now()
	state.TotalSynced += int64(stats.New + stats.Updated)
	if lastID != "" {
		state.LastArticleID = lastID
	}

	return s.syncState.Update(ctx, state)
}
