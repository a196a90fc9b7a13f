// AngelaMos | 2026
// repository.go

package link

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gatekeep-app/gatekeep/internal/core"
)

type Repository interface {
	Create(ctx context.Context, l *Link) error
	GetByID(ctx context.Context, id string) (*Link, error)
	List(ctx context.Context) ([]Link, error)
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, l *Link) error {
	query := `
		INSERT INTO links (id, creator_id, title, description, kind, url,
		                   thumbnail_url, is_active, views, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		l.CreatorID,
		l.Title,
		l.Description,
		l.Kind,
		l.URL,
		l.ThumbnailURL,
		l.IsActive,
		l.Views,
		l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create link: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Link, error) {
	query := `
		SELECT id, creator_id, title, description, kind, url, thumbnail_url,
		       is_active, views, created_at
		FROM links
		WHERE id = $1`

	var l Link
	err := r.db.GetContext(ctx, &l, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get link: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get link: %w", err)
	}

	return &l, nil
}

// List returns all links, most recently created first.
func (r *repository) List(ctx context.Context) ([]Link, error) {
	query := `
		SELECT id, creator_id, title, description, kind, url, thumbnail_url,
		       is_active, views, created_at
		FROM links
		ORDER BY created_at DESC, id`

	links := []Link{}
	if err := r.db.SelectContext(ctx, &links, query); err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}

	return links, nil
}

// Delete is a hard delete and a silent no-op when no row matches. Leads
// referencing the id are left in place.
func (r *repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM links WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete link: %w", err)
	}

	return nil
}

// IncrementViews bumps the view counter without recording a lead. Unknown
// ids are a no-op, mirroring Delete.
func (r *repository) IncrementViews(ctx context.Context, id string) error {
	query := `UPDATE links SET views = views + 1 WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("increment views: %w", err)
	}

	return nil
}
