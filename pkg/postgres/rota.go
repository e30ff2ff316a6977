package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
)

// uniqueViolation is the Postgres error code for a unique index breach.
const uniqueViolation = "23505"

// Rotas persist as whole JSONB documents, one row per week. The week_start,
// status, version, and deleted columns are denormalized copies of document
// fields kept for indexing; the document is the source of truth.

// GetByWeekStart returns the live rota for the week, or
// model.ErrRotaNotFound. Soft-deleted weeks do not resolve.
func (db *DB) GetByWeekStart(ctx context.Context, weekStart string) (*model.Rota, error) {
	return db.scanRota(db.pool.QueryRow(ctx, `
		SELECT doc FROM rota WHERE week_start = $1 AND NOT deleted
	`, weekStart))
}

// GetByID returns the rota with the given id, soft-deleted or not, or
// model.ErrRotaNotFound.
func (db *DB) GetByID(ctx context.Context, id string) (*model.Rota, error) {
	return db.scanRota(db.pool.QueryRow(ctx, `
		SELECT doc FROM rota WHERE id = $1
	`, id))
}

func (db *DB) scanRota(row pgx.Row) (*model.Rota, error) {
	var doc []byte
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrRotaNotFound
		}
		return nil, fmt.Errorf("failed to query rota: %w", err)
	}
	var rota model.Rota
	if err := json.Unmarshal(doc, &rota); err != nil {
		return nil, fmt.Errorf("failed to decode rota document: %w", err)
	}
	if err := rota.Check(); err != nil {
		return nil, fmt.Errorf("corrupt rota document: %w", err)
	}
	return &rota, nil
}

// Create inserts a new rota document. A live rota already covering the
// week fails with model.ErrRotaExists.
func (db *DB) Create(ctx context.Context, rota *model.Rota) error {
	doc, err := json.Marshal(rota)
	if err != nil {
		return fmt.Errorf("failed to encode rota document: %w", err)
	}
	_, err = db.pool.Exec(ctx, `
		INSERT INTO rota (id, week_start, status, version, deleted, doc)
		VALUES ($1, $2, $3, $4, FALSE, $5)
	`, rota.ID, rota.WeekStart, string(rota.Status), rota.Version, doc)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.ErrRotaExists
		}
		return fmt.Errorf("failed to insert rota: %w", err)
	}
	return nil
}

// Replace overwrites the stored document with the given snapshot. The
// write only lands when the stored version is exactly one behind the
// snapshot's; a concurrent editor having moved the document on fails with
// model.ErrRotaConflict so the caller can re-read and retry.
func (db *DB) Replace(ctx context.Context, rota *model.Rota) error {
	doc, err := json.Marshal(rota)
	if err != nil {
		return fmt.Errorf("failed to encode rota document: %w", err)
	}
	tag, err := db.pool.Exec(ctx, `
		UPDATE rota
		SET week_start = $2, status = $3, version = $4, doc = $5, updated_at = NOW()
		WHERE id = $1 AND version = $4 - 1 AND NOT deleted
	`, rota.ID, rota.WeekStart, string(rota.Status), rota.Version, doc)
	if err != nil {
		return fmt.Errorf("failed to replace rota: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := db.pool.QueryRow(ctx, `
			SELECT EXISTS (SELECT 1 FROM rota WHERE id = $1 AND NOT deleted)
		`, rota.ID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check rota existence: %w", err)
		}
		if !exists {
			return model.ErrRotaNotFound
		}
		return model.ErrRotaConflict
	}
	return nil
}

// SoftDelete flags the rota deleted and stamps the audit fields into the
// document. The row stays behind for audit. Deleting an already-deleted rota
// is a no-op.
func (db *DB) SoftDelete(ctx context.Context, id, actor string, at time.Time) error {
	tag, err := db.pool.Exec(ctx, `
		UPDATE rota
		SET deleted = TRUE,
		    version = version + 1,
		    updated_at = NOW(),
		    doc = doc || jsonb_build_object(
		        'deletedBy', $2::text,
		        'deletedAt', $3::timestamptz,
		        'updatedBy', $2::text,
		        'updatedAt', $3::timestamptz,
		        'version', version + 1
		    )
		WHERE id = $1 AND NOT deleted
	`, id, actor, at.UTC())
	if err != nil {
		return fmt.Errorf("failed to soft-delete rota: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := db.pool.QueryRow(ctx, `
			SELECT EXISTS (SELECT 1 FROM rota WHERE id = $1)
		`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check rota existence: %w", err)
		}
		if !exists {
			return model.ErrRotaNotFound
		}
	}
	return nil
}

// ListRotaWeeks returns the live weeks on record, newest first, for the
// console's week listing.
func (db *DB) ListRotaWeeks(ctx context.Context) ([]RotaWeek, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT id, week_start, status, version
		FROM rota
		WHERE NOT deleted
		ORDER BY week_start DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query rota weeks: %w", err)
	}
	defer rows.Close()

	var weeks []RotaWeek
	for rows.Next() {
		var week RotaWeek
		var weekStart time.Time
		if err := rows.Scan(&week.ID, &weekStart, &week.Status, &week.Version); err != nil {
			return nil, fmt.Errorf("failed to scan rota week: %w", err)
		}
		week.WeekStart = weekStart.Format(model.DateFormat)
		weeks = append(weeks, week)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rota weeks: %w", err)
	}
	return weeks, nil
}

// RotaWeek is one row in the week listing.
type RotaWeek struct {
	ID        string
	WeekStart string
	Status    string
	Version   int64
}
