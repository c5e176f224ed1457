package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes to the database
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Event listing sorts and owner lookups
		{"events", "idx_events_created_at", "created_at"},
		{"events", "idx_events_organizer_id", "organizer_id"},

		// Session listing per event
		{"sessions", "idx_sessions_event_id", "event_id"},

		// Comment listing per event
		{"comments", "idx_comments_event_id", "event_id"},
		{"comments", "idx_comments_author_id", "author_id"},

		// Navbar counters
		{"notifications", "idx_notifications_user_read", "user_id, is_read"},
		{"bookmarks", "idx_bookmarks_user_id", "user_id"},
	}

	for _, idx := range indexes {
		// Check if index already exists
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		fmt.Printf("Created index %s on %s(%s)\n", idx.name, idx.table, idx.columns)
	}

	return nil
}
