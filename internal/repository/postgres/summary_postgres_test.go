package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"docsummary/internal/model"
	"docsummary/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var summaryCols = []string{"id", "filename", "extension", "content_type", "size", "outcome", "failure_reason", "latency_ms", "created_at"}

func TestSummaryPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSummaryPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	rec := &model.SummaryRecord{
		ID:          "test-uuid",
		Filename:    "report.pdf",
		Extension:   "pdf",
		ContentType: "application/pdf",
		Size:        123,
		Outcome:     model.OutcomeOK,
		LatencyMs:   42,
		CreatedAt:   now,
	}

	rows := sqlmock.NewRows(summaryCols).
		AddRow(rec.ID, rec.Filename, rec.Extension, rec.ContentType, rec.Size, rec.Outcome, rec.FailureReason, rec.LatencyMs, rec.CreatedAt)

	mock.ExpectQuery("INSERT INTO summaries").
		WithArgs(rec.ID, rec.Filename, rec.Extension, rec.ContentType, rec.Size, rec.Outcome, rec.FailureReason, rec.LatencyMs, rec.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, rec)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, rec.ID, result.ID)
	assert.Equal(t, int64(42), result.LatencyMs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSummaryPostgres_CreateError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSummaryPostgres(db)

	mock.ExpectQuery("INSERT INTO summaries").WillReturnError(errors.New("insert failed"))

	result, err := repo.Create(context.Background(), &model.SummaryRecord{ID: "x"})

	assert.EqualError(t, err, "insert failed")
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSummaryPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSummaryPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM summaries").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		rows := sqlmock.NewRows(summaryCols).
			AddRow("id-2", "b.png", "png", "image/png", 10, model.OutcomeFailed, "quota", 5, time.Now()).
			AddRow("id-1", "a.docx", "docx", "application/octet-stream", 20, model.OutcomeOK, "", 7, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM summaries ORDER BY").
			WithArgs(10, 0).
			WillReturnRows(rows)

		res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0})

		assert.NoError(t, err)
		assert.Equal(t, 2, res.Total)
		assert.Len(t, res.Items, 2)
		assert.Equal(t, "quota", res.Items[0].FailureReason)
	})

	t.Run("count error", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM summaries").
			WillReturnError(errors.New("db down"))

		res, err := repo.List(ctx, repository.PageQuery{Limit: 10})

		assert.Error(t, err)
		assert.Nil(t, res)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
