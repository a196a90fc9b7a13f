// AngelaMos | 2026
// schema.go

package core

import (
	"context"
	"fmt"
)

// Leads deliberately carry no foreign key to links: deleting a link must
// not cascade, and a dangling link_id is resolved to a placeholder at read
// time.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS creators (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		handle     TEXT NOT NULL,
		email      TEXT NOT NULL,
		avatar_url TEXT NOT NULL DEFAULT '',
		plan       TEXT NOT NULL DEFAULT 'free',
		joined_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS links (
		id            TEXT PRIMARY KEY,
		creator_id    TEXT NOT NULL REFERENCES creators (id),
		title         TEXT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		kind          TEXT NOT NULL,
		url           TEXT NOT NULL,
		thumbnail_url TEXT NOT NULL DEFAULT '',
		is_active     BOOLEAN NOT NULL DEFAULT TRUE,
		views         BIGINT NOT NULL DEFAULT 0 CHECK (views >= 0),
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS leads (
		id          TEXT PRIMARY KEY,
		link_id     TEXT NOT NULL,
		name        TEXT NOT NULL,
		email       TEXT NOT NULL,
		phone       TEXT NOT NULL,
		captured_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_links_created_at ON links (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_captured_at ON leads (captured_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_link_id ON leads (link_id)`,
}

func (d *Database) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := d.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
