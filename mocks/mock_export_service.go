package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"invoicehub/internal/domain"
	"invoicehub/internal/port"
)

// MockExportService is a mock implementation of service.ExportService.
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Export(ctx context.Context, format domain.ExportFormat, w io.Writer) error {
	args := m.Called(ctx, format, w)
	return args.Error(0)
}

func (m *MockExportService) ExportToStorage(ctx context.Context, format domain.ExportFormat, key string) (*port.UploadOutput, error) {
	args := m.Called(ctx, format, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.UploadOutput), args.Error(1)
}
