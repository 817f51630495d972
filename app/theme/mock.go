package theme

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/joefazee/travel-explorer/models"
)

// MockService is a testify mock of Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Mode(ctx context.Context, sessionID uuid.UUID) models.ThemeMode {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(models.ThemeMode)
}

func (m *MockService) Toggle(ctx context.Context, sessionID uuid.UUID) (models.ThemeMode, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(models.ThemeMode), args.Error(1)
}
