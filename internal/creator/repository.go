// AngelaMos | 2026
// repository.go

package creator

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gatekeep-app/gatekeep/internal/core"
)

type Repository interface {
	Get(ctx context.Context) (*Creator, error)
	Create(ctx context.Context, c *Creator) error
	Update(ctx context.Context, c *Creator) error
	Exists(ctx context.Context) (bool, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Get(ctx context.Context) (*Creator, error) {
	query := `
		SELECT id, name, handle, email, avatar_url, plan, joined_at
		FROM creators
		ORDER BY joined_at
		LIMIT 1`

	var c Creator
	err := r.db.GetContext(ctx, &c, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get creator: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get creator: %w", err)
	}

	return &c, nil
}

func (r *repository) Create(ctx context.Context, c *Creator) error {
	query := `
		INSERT INTO creators (id, name, handle, email, avatar_url, plan, joined_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Handle,
		c.Email,
		c.AvatarURL,
		c.Plan,
		c.JoinedAt,
	)
	if err != nil {
		return fmt.Errorf("create creator: %w", err)
	}

	return nil
}

func (r *repository) Update(ctx context.Context, c *Creator) error {
	query := `
		UPDATE creators
		SET name = $2, handle = $3, avatar_url = $4
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Handle,
		c.AvatarURL,
	)
	if err != nil {
		return fmt.Errorf("update creator: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update creator: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update creator: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Exists(ctx context.Context) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM creators)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query); err != nil {
		return false, fmt.Errorf("check creator exists: %w", err)
	}

	return exists, nil
}
