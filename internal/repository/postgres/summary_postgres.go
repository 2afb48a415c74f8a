package postgres

import (
	"context"
	"database/sql"

	"docsummary/internal/model"
	"docsummary/internal/repository"
)

// SummaryPostgres is a PostgreSQL implementation of repository.SummaryRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type SummaryPostgres struct {
	db *sql.DB
}

// NewSummaryPostgres creates a new SummaryPostgres repository.
func NewSummaryPostgres(db *sql.DB) *SummaryPostgres {
	return &SummaryPostgres{db: db}
}

var _ repository.SummaryRepository = (*SummaryPostgres)(nil)

const summaryColumns = `id, filename, extension, content_type, size, outcome, failure_reason, latency_ms, created_at`

// Create inserts a summary row and returns the stored record.
func (r *SummaryPostgres) Create(ctx context.Context, rec *model.SummaryRecord) (*model.SummaryRecord, error) {
	const q = `
		INSERT INTO summaries (` + summaryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + summaryColumns
	row := r.db.QueryRowContext(ctx, q,
		rec.ID,
		rec.Filename,
		rec.Extension,
		rec.ContentType,
		rec.Size,
		rec.Outcome,
		rec.FailureReason,
		rec.LatencyMs,
		rec.CreatedAt,
	)
	out, err := scanSummary(row)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List returns records using LIMIT/OFFSET pagination and a total count.
func (r *SummaryPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.SummaryRecord], error) {
	const qCount = `SELECT COUNT(*) FROM summaries`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + summaryColumns + `
		FROM summaries
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.SummaryRecord, 0)
	for rows.Next() {
		rec, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.SummaryRecord]{
		Items: items,
		Total: total,
	}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSummary(s scanner) (*model.SummaryRecord, error) {
	var rec model.SummaryRecord
	if err := s.Scan(
		&rec.ID,
		&rec.Filename,
		&rec.Extension,
		&rec.ContentType,
		&rec.Size,
		&rec.Outcome,
		&rec.FailureReason,
		&rec.LatencyMs,
		&rec.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &rec, nil
}
