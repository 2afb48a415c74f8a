package repository

import (
	"context"

	"docsummary/internal/model"
)

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.

// SummaryRepository persists summary audit records using SQL queries only.
// Implementations hold no business logic.
type SummaryRepository interface {
	// Create inserts a new audit record and returns the stored row.
	Create(ctx context.Context, rec *model.SummaryRecord) (*model.SummaryRecord, error)

	// List returns a page of records, newest first, and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.SummaryRecord], error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
