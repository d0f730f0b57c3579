package domain

import "time"

// SyncStats holds statistics about a mirror sync run.
type SyncStats struct {
	SourceID  string
	Fetched   int
	New       int
	Updated   int
	Skipped   int
	Errors    int
	Published int
	Duration  time.Duration
}

type SyncState struct {
	ID            int64     `db:"id"`
	SourceID      string    `db:"source_id"`
	LastSyncedAt  time.Time `db:"last_synced_at"`
	LastArticleID string    `db:"last_article_id"`
	TotalSynced   int64     `db:"total_synced"`
}
