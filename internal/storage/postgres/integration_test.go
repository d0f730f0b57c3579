//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/domain"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_content.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM article_tags")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM tags")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM articles")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM sync_state")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func newArticle(cmsID, title string, updatedAt time.Time) *domain.Article {
	return &domain.Article{
		ID:          cmsID,
		Title:       title,
		Excerpt:     "Excerpt",
		Image:       "/placeholder.svg",
		Date:        "March 15, 2024",
		Author:      "DSC Staff",
		Category:    "News",
		URL:         "/news/" + cmsID,
		PublishedAt: updatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (s *PostgresIntegrationSuite) TestArticleStore_Upsert_Insert() {
	store := NewArticleStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	id, err := store.Upsert(s.ctx, newArticle("post-1", "Test Article", now))
	s.NoError(err)
	s.Greater(id, int64(0))

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM articles WHERE cms_id = $1", "post-1")
	s.NoError(err)
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestArticleStore_Upsert_UpdateWhenNewer() {
	store := NewArticleStore(s.db)
	now := time.Now().Truncate(time.Microsecond)
	older := now.Add(-1 * time.Hour)

	article := newArticle("post-1", "Original Title", older)
	id1, err := store.Upsert(s.ctx, article)
	s.NoError(err)

	article.Title = "Updated Title"
	article.UpdatedAt = now
	id2, err := store.Upsert(s.ctx, article)
	s.NoError(err)
	s.Equal(id1, id2)

	stored, err := store.GetByCMSID(s.ctx, "post-1")
	s.NoError(err)
	s.Equal("Updated Title", stored.Title)
}

func (s *PostgresIntegrationSuite) TestArticleStore_Upsert_SkipWhenOlder() {
	store := NewArticleStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	article := newArticle("post-1", "Newer Title", now)
	id1, err := store.Upsert(s.ctx, article)
	s.NoError(err)

	article.Title = "Older Title"
	article.UpdatedAt = now.Add(-1 * time.Hour)
	id2, err := store.Upsert(s.ctx, article)
	s.NoError(err)
	s.Equal(id1, id2)

	stored, err := store.GetByCMSID(s.ctx, "post-1")
	s.NoError(err)
	s.Equal("Newer Title", stored.Title)
}

func (s *PostgresIntegrationSuite) TestArticleStore_GetExisting() {
	store := NewArticleStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	for _, id := range []string{"a", "b", "c"} {
		_, err := store.Upsert(s.ctx, newArticle(id, "Article", now))
		s.NoError(err)
	}

	result, err := store.GetExistingByCMSIDs(s.ctx, []string{"a", "b", "missing"})
	s.NoError(err)
	s.Len(result, 2)
	s.Contains(result, "a")
	s.NotContains(result, "missing")
	s.WithinDuration(now, result["a"], time.Second)

	empty, err := store.GetExistingByCMSIDs(s.ctx, nil)
	s.NoError(err)
	s.Empty(empty)
}

func (s *PostgresIntegrationSuite) TestTagStore_UpsertBatch() {
	store := NewTagStore(s.db)

	ids, err := store.UpsertBatch(s.ctx, []string{"goalball", "boccia", "goalball"})
	s.NoError(err)
	s.Len(ids, 2)

	again, err := store.UpsertBatch(s.ctx, []string{"goalball"})
	s.NoError(err)
	s.Equal(ids["goalball"], again["goalball"])

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM tags")
	s.NoError(err)
	s.Equal(2, count)
}

func (s *PostgresIntegrationSuite) TestTagStore_LinkToArticle_ReplacesOld() {
	tagStore := NewTagStore(s.db)
	articleStore := NewArticleStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	articleID, err := articleStore.Upsert(s.ctx, newArticle("post-1", "Tagged", now))
	s.NoError(err)

	ids, err := tagStore.UpsertBatch(s.ctx, []string{"goalball", "boccia", "para-swimming"})
	s.NoError(err)

	err = tagStore.LinkToArticle(s.ctx, articleID, []int64{ids["goalball"], ids["boccia"]})
	s.NoError(err)

	err = tagStore.LinkToArticle(s.ctx, articleID, []int64{ids["para-swimming"]})
	s.NoError(err)

	labels, err := tagStore.GetLabelsByArticleID(s.ctx, articleID)
	s.NoError(err)
	s.Equal([]string{"para-swimming"}, labels)

	stored, err := articleStore.GetByCMSID(s.ctx, "post-1")
	s.NoError(err)
	s.Equal([]string{"para-swimming"}, stored.SportTags)
}

func (s *PostgresIntegrationSuite) TestSyncStateStore_GetNew() {
	store := NewSyncStateStore(s.db)

	state, err := store.Get(s.ctx, "new-source")
	s.NoError(err)
	s.Equal("new-source", state.SourceID)
	s.True(state.LastSyncedAt.IsZero())
	s.Equal(int64(0), state.TotalSynced)
}

func (s *PostgresIntegrationSuite) TestSyncStateStore_UpdateAndGet() {
	store := NewSyncStateStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	state := &domain.SyncState{
		SourceID:      "sanity",
		LastSyncedAt:  now,
		LastArticleID: "post-9",
		TotalSynced:   100,
	}
	s.NoError(store.Update(s.ctx, state))

	state.TotalSynced = 120
	s.NoError(store.Update(s.ctx, state))

	retrieved, err := store.Get(s.ctx, "sanity")
	s.NoError(err)
	s.Equal("post-9", retrieved.LastArticleID)
	s.Equal(int64(120), retrieved.TotalSynced)
	s.WithinDuration(now, retrieved.LastSyncedAt, time.Second)
}

func (s *PostgresIntegrationSuite) TestTransaction_Rollback() {
	tm := NewTransactionManager(s.db)
	articleStore := NewArticleStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if _, err := articleStore.Upsert(ctx, newArticle("rollback", "Should Rollback", now)); err != nil {
			return err
		}
		return context.Canceled
	})
	s.Error(err)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM articles WHERE cms_id = $1", "rollback")
	s.NoError(err)
	s.Equal(0, count)
}

func (s *PostgresIntegrationSuite) TestTransaction_Commit() {
	tm := NewTransactionManager(s.db)
	articleStore := NewArticleStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		_, err := articleStore.Upsert(ctx, newArticle("commit", "Committed", now))
		return err
	})
	s.NoError(err)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM articles WHERE cms_id = $1", "commit")
	s.NoError(err)
	s.Equal(1, count)
}
