package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

type TagStore struct {
	db *sqlx.DB
}

func NewTagStore(db *sqlx.DB) *TagStore {
	return &TagStore{db: db}
}

// UpsertBatch makes sure every label exists and returns label -> tag id.
func (s *TagStore) UpsertBatch(ctx context.Context, labels []string) (map[string]int64, error) {
	ids := make(map[string]int64, len(labels))
	labels = dedupe(labels)
	if len(labels) == 0 {
		return ids, nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO tags (label) VALUES ")
	valueArgs := make([]interface{}, 0, len(labels))

	for i, label := range labels {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($")
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(")")
		valueArgs = append(valueArgs, label)
	}
	// DO UPDATE so RETURNING also yields rows that already existed.
	sb.WriteString(" ON CONFLICT (label) DO UPDATE SET label = EXCLUDED.label RETURNING id, label")

	rows, err := GetExecutor(ctx, s.db).QueryxContext(ctx, sb.String(), valueArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var label string
		if err := rows.Scan(&id, &label); err != nil {
			return nil, err
		}
		ids[label] = id
	}

	return ids, rows.Err()
}

// LinkToArticle replaces the article's tag links with tagIDs.
func (s *TagStore) LinkToArticle(ctx context.Context, articleID int64, tagIDs []int64) error {
	exec := GetExecutor(ctx, s.db)

	_, err := exec.ExecContext(ctx,
		"DELETE FROM article_tags WHERE article_id = $1",
		articleID,
	)
	if err != nil {
		return err
	}

	if len(tagIDs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO article_tags (article_id, tag_id) VALUES ")
	valueArgs := make([]interface{}, 0, len(tagIDs)+1)
	valueArgs = append(valueArgs, articleID)

	for i, tagID := range tagIDs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($1, $")
		sb.WriteString(strconv.Itoa(i + 2))
		sb.WriteString(")")
		valueArgs = append(valueArgs, tagID)
	}
	sb.WriteString(" ON CONFLICT DO NOTHING")

	_, err = exec.ExecContext(ctx, sb.String(), valueArgs...)
	return err
}

type tagRow struct {
	ID    int64  `db:"id"`
	Label string `db:"label"`
}

// GetLabelsByArticleID returns the labels linked to an article, sorted.
func (s *TagStore) GetLabelsByArticleID(ctx context.Context, articleID int64) ([]string, error) {
	query := `
		SELECT t.id, t.label
		FROM tags t
		INNER JOIN article_tags at ON at.tag_id = t.id
		WHERE at.article_id = $1
		ORDER BY t.label`

	var rows []tagRow
	if err := s.db.SelectContext(ctx, &rows, query, articleID); err != nil {
		return nil, err
	}

	labels := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = r.Label
	}
	return labels, nil
}

// One INSERT ... ON CONFLICT DO UPDATE cannot touch the same row twice.
func dedupe(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
