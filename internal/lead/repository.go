// AngelaMos | 2026
// repository.go

package lead

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/gatekeep-app/gatekeep/internal/core"
)

type Repository interface {
	Create(ctx context.Context, l *Lead) error
	Insert(ctx context.Context, l *Lead) error
	List(ctx context.Context, search string) ([]WithSource, error)
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Create stores the lead and bumps the referenced link's view counter in
// one transaction: the lead must be durable before the increment counts as
// done, and callers must never observe one without the other. A dangling
// link id makes the increment a no-op rather than an error.
func (r *repository) Create(ctx context.Context, l *Lead) error {
	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		insert := `
			INSERT INTO leads (id, link_id, name, email, phone, captured_at)
			VALUES ($1, $2, $3, $4, $5, $6)`

		if _, err := tx.ExecContext(ctx, insert,
			l.ID,
			l.LinkID,
			l.Name,
			l.Email,
			l.Phone,
			l.CapturedAt,
		); err != nil {
			return fmt.Errorf("insert lead: %w", err)
		}

		bump := `UPDATE links SET views = views + 1 WHERE id = $1`
		if _, err := tx.ExecContext(ctx, bump, l.LinkID); err != nil {
			return fmt.Errorf("increment link views: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("create lead: %w", err)
	}

	return nil
}

// Insert stores a lead without touching any view counter. Seeding and
// imports use this; the capture flow goes through Create.
func (r *repository) Insert(ctx context.Context, l *Lead) error {
	query := `
		INSERT INTO leads (id, link_id, name, email, phone, captured_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := r.db.ExecContext(ctx, query,
		l.ID,
		l.LinkID,
		l.Name,
		l.Email,
		l.Phone,
		l.CapturedAt,
	); err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}

	return nil
}

// List returns all leads newest-first, each joined with its source link's
// title. search filters by substring over name and email,
// case-insensitively.
func (r *repository) List(
	ctx context.Context,
	search string,
) ([]WithSource, error) {
	query := `
		SELECT ld.id, ld.link_id, ld.name, ld.email, ld.phone, ld.captured_at,
		       COALESCE(lk.title, $1) AS source_title
		FROM leads ld
		LEFT JOIN links lk ON lk.id = ld.link_id`

	args := []any{UnknownLinkTitle}

	if search != "" {
		query += ` WHERE (ld.name ILIKE $2 OR ld.email ILIKE $2)`
		args = append(args, "%"+escapeLike(search)+"%")
	}

	query += ` ORDER BY ld.captured_at DESC, ld.id`

	leads := []WithSource{}
	if err := r.db.SelectContext(ctx, &leads, query, args...); err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}

	return leads, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM leads`); err != nil {
		return 0, fmt.Errorf("count leads: %w", err)
	}

	return total, nil
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
