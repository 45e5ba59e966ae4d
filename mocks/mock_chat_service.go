package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"invoicehub/internal/domain"
)

// MockChatService is a mock implementation of service.ChatService.
type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) InspectSchema(ctx context.Context) (*domain.SchemaInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SchemaInfo), args.Error(1)
}

func (m *MockChatService) Ask(ctx context.Context, question string) (*domain.ChatAnswer, error) {
	args := m.Called(ctx, question)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatAnswer), args.Error(1)
}
