package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/domain"
)

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// Upsert writes the article unless the stored copy is at least as new.
func (s *ArticleStore) Upsert(ctx context.Context, article *domain.Article) (int64, error) {
	query := `
		INSERT INTO articles (
			cms_id, title, excerpt, image_url, display_date, author,
			category, url, published_at, cms_updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
		ON CONFLICT (cms_id) DO UPDATE SET
			title = EXCLUDED.title,
			excerpt = EXCLUDED.excerpt,
			image_url = EXCLUDED.image_url,
			display_date = EXCLUDED.display_date,
			author = EXCLUDED.author,
			category = EXCLUDED.category,
			url = EXCLUDED.url,
			published_at = EXCLUDED.published_at,
			cms_updated_at = EXCLUDED.cms_updated_at,
			updated_at = NOW()
		WHERE articles.cms_updated_at < EXCLUDED.cms_updated_at
		RETURNING id`

	exec := GetExecutor(ctx, s.db)

	var id int64
	err := exec.QueryRowxContext(ctx, query,
		article.ID,
		article.Title,
		article.Excerpt,
		article.Image,
		article.Date,
		article.Author,
		article.Category,
		article.URL,
		nullTime(article.PublishedAt),
		article.UpdatedAt,
	).Scan(&id)

	if errors.Is(err, sql.ErrNoRows) {
		err = exec.QueryRowxContext(ctx,
			"SELECT id FROM articles WHERE cms_id = $1",
			article.ID,
		).Scan(&id)
	}

	if err != nil {
		return 0, err
	}

	return id, nil
}

func (s *ArticleStore) GetExistingByCMSIDs(ctx context.Context, ids []string) (map[string]time.Time, error) {
	if len(ids) == 0 {
		return make(map[string]time.Time), nil
	}

	query := `SELECT cms_id, cms_updated_at FROM articles WHERE cms_id = ANY($1)`

	rows, err := s.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]time.Time)
	for rows.Next() {
		var cmsID string
		var updatedAt time.Time
		if err := rows.Scan(&cmsID, &updatedAt); err != nil {
			return nil, err
		}
		result[cmsID] = updatedAt
	}

	return result, rows.Err()
}

type articleRow struct {
	CMSID       string       `db:"cms_id"`
	Title       string       `db:"title"`
	Excerpt     string       `db:"excerpt"`
	ImageURL    string       `db:"image_url"`
	DisplayDate string       `db:"display_date"`
	Author      string       `db:"author"`
	Category    string       `db:"category"`
	URL         string       `db:"url"`
	PublishedAt sql.NullTime `db:"published_at"`
	UpdatedAt   time.Time    `db:"cms_updated_at"`
}

// GetByCMSID loads a mirrored article with its sport tags.
func (s *ArticleStore) GetByCMSID(ctx context.Context, cmsID string) (*domain.Article, error) {
	var row articleRow
	err := s.db.GetContext(ctx, &row, `
		SELECT cms_id, title, excerpt, image_url, display_date, author,
		       category, url, published_at, cms_updated_at
		FROM articles
		WHERE cms_id = $1`, cmsID)
	if err != nil {
		return nil, err
	}

	var tags []string
	err = s.db.SelectContext(ctx, &tags, `
		SELECT t.label
		FROM tags t
		INNER JOIN article_tags at ON at.tag_id = t.id
		INNER JOIN articles a ON a.id = at.article_id
		WHERE a.cms_id = $1
		ORDER BY t.label`, cmsID)
	if err != nil {
		return nil, err
	}

	article := &domain.Article{
		ID:        row.CMSID,
		Title:     row.Title,
		Excerpt:   row.Excerpt,
		Image:     row.ImageURL,
		Date:      row.DisplayDate,
		Author:    row.Author,
		Category:  row.Category,
		URL:       row.URL,
		SportTags: append([]string{}, tags...),
		UpdatedAt: row.UpdatedAt,
	}
	if row.PublishedAt.Valid {
		article.PublishedAt = row.PublishedAt.Time
	}
	return article, nil
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
