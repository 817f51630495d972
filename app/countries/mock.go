package countries

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/joefazee/travel-explorer/models"
)

// MockRepository is a testify mock of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FetchAll(ctx context.Context) ([]models.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Country), args.Error(1)
}

// MockService is a testify mock of Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Browse(ctx context.Context, q BrowseQuery) (*Listing, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Listing), args.Error(1)
}

func (m *MockService) GetByCode(ctx context.Context, code string) (*models.Country, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Country), args.Error(1)
}

func (m *MockService) State() LoadState {
	args := m.Called()
	return args.Get(0).(LoadState)
}
