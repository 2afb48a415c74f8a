package mocks

import (
	"context"

	"docsummary/internal/model"
	"docsummary/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockSummaryService struct {
	mock.Mock
}

func (m *MockSummaryService) Summarize(ctx context.Context, req model.UploadRequest) (*model.Summary, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Summary), args.Error(1)
}

func (m *MockSummaryService) List(ctx context.Context, limit, offset int) (*service.SummaryListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SummaryListResult), args.Error(1)
}
