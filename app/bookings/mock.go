package bookings

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

func (m *MockService) NewForm(destination string) *Form {
	args := m.Called(destination)
	return args.Get(0).(*Form)
}

func (m *MockService) Validate(form *Form) ValidationResult {
	args := m.Called(form)
	return args.Get(0).(ValidationResult)
}

func (m *MockService) Submit(ctx context.Context, form *Form) (*models.Booking, *Pending, error) {
	args := m.Called(ctx, form)
	var booking *models.Booking
	if b := args.Get(0); b != nil {
		booking = b.(*models.Booking)
	}
	var pending *Pending
	if p := args.Get(1); p != nil {
		pending = p.(*Pending)
	}
	return booking, pending, args.Error(2)
}

func (m *MockService) Get(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}
