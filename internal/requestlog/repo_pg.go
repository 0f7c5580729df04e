package requestlog

import (
	"context"
	"database/sql"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Append inserts entry and trims the table to the newest MaxEntries rows in one transaction.
func (r *PGRepo) Append(ctx context.Context, entry Entry) error {
	const insert = `
INSERT INTO analysis_requests (
	request_id, session_key, filename, job_title, size_bytes, status, match_score, duration_ms, error_message, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	const trim = `
DELETE FROM analysis_requests
WHERE id NOT IN (
	SELECT id FROM analysis_requests ORDER BY created_at DESC, id DESC LIMIT $1
)`
	entry = entry.normalized()

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, insert,
		entry.RequestID,
		entry.SessionKey,
		entry.FileName,
		entry.JobTitle,
		entry.SizeBytes,
		entry.Status,
		nullableInt(entry.MatchScore),
		entry.DurationMs,
		entry.ErrorMessage,
		entry.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert analysis request: %w", err)
	}
	if _, err := tx.ExecContext(ctx, trim, MaxEntries); err != nil {
		return fmt.Errorf("trim analysis requests: %w", err)
	}
	return tx.Commit()
}

// Recent returns up to limit entries, newest first.
func (r *PGRepo) Recent(ctx context.Context, limit int) ([]Entry, error) {
	const query = `
SELECT id, request_id, session_key, filename, job_title, size_bytes, status, match_score, duration_ms, error_message, created_at
FROM analysis_requests
ORDER BY created_at DESC, id DESC
LIMIT $1`
	rows, err := r.DB.QueryContext(ctx, query, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Entry{}
	for rows.Next() {
		var (
			e     Entry
			score sql.NullInt64
		)
		if err := rows.Scan(
			&e.ID,
			&e.RequestID,
			&e.SessionKey,
			&e.FileName,
			&e.JobTitle,
			&e.SizeBytes,
			&e.Status,
			&score,
			&e.DurationMs,
			&e.ErrorMessage,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		if score.Valid {
			v := int(score.Int64)
			e.MatchScore = &v
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Ping checks connectivity for readiness probes.
func (r *PGRepo) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return int64(*v)
}
