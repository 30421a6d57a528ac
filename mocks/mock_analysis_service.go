package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"idscan/internal/domain"
	"idscan/internal/service"
)

// MockAnalysisService is a mock implementation of service.AnalysisService.
type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) AnalyzeID(ctx context.Context, input service.AnalyzeIDInput) (*domain.NormalizedResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NormalizedResult), args.Error(1)
}
