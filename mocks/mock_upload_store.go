package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"idscan/internal/domain"
	"idscan/internal/port"
)

// MockUploadStore is a mock implementation of port.UploadStore.
type MockUploadStore struct {
	mock.Mock
}

func (m *MockUploadStore) Save(ctx context.Context, input port.SaveInput) (*domain.Upload, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Upload), args.Error(1)
}

func (m *MockUploadStore) Read(ctx context.Context, upload *domain.Upload) ([]byte, error) {
	args := m.Called(ctx, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockUploadStore) Remove(ctx context.Context, upload *domain.Upload) error {
	args := m.Called(ctx, upload)
	return args.Error(0)
}

func (m *MockUploadStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
