package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/joefazee/travel-explorer/models"
)

// Service defines the interface for booking business logic
type Service interface {
	// NewForm returns a form with default values for destination
	NewForm(destination string) *Form
	// Validate returns the errors visible on form right now
	Validate(form *Form) ValidationResult
	// Submit validates form and schedules the simulated submission
	Submit(ctx context.Context, form *Form) (*models.Booking, *Pending, error)
	// Get returns the current state of a booking
	Get(ctx context.Context, id uuid.UUID) (*models.Booking, error)
}
