package mocks

import (
	"context"

	"docsummary/internal/model"
	"docsummary/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockSummaryRepository struct {
	mock.Mock
}

func (m *MockSummaryRepository) Create(ctx context.Context, rec *model.SummaryRecord) (*model.SummaryRecord, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SummaryRecord), args.Error(1)
}

func (m *MockSummaryRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.SummaryRecord], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.SummaryRecord]), args.Error(1)
}
