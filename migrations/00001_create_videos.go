package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateVideos, downCreateVideos)
}

func upCreateVideos(ctx context.Context, tx *sql.Tx) error {
	// Video tablosu:
	createVideoTable := `
	CREATE TABLE videos (
		video_id UUID PRIMARY KEY,
		original_name VARCHAR(255) NOT NULL,
		original_location VARCHAR(500),
		compressed_location VARCHAR(500) NOT NULL,
		status VARCHAR(50) NOT NULL,
		height BIGINT,
		width BIGINT,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`
	if _, err := tx.ExecContext(ctx, createVideoTable); err != nil {
		return fmt.Errorf("could not create videos table: %w", err)
	}
	return nil
}

func downCreateVideos(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS videos;"); err != nil {
		return fmt.Errorf("could not drop videos table: %w", err)
	}
	return nil
}
