package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"idscan/internal/domain"
	"idscan/internal/port"
)

// MockDocumentAnalyzer is a mock implementation of port.DocumentAnalyzer.
type MockDocumentAnalyzer struct {
	mock.Mock
}

func (m *MockDocumentAnalyzer) Submit(ctx context.Context, input port.AnalyzeInput) (*domain.AnalysisJob, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisJob), args.Error(1)
}

func (m *MockDocumentAnalyzer) Poll(ctx context.Context, job *domain.AnalysisJob) (*domain.AnalyzeResult, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalyzeResult), args.Error(1)
}
