package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/joefazee/travel-explorer/internal/cache"
	"github.com/joefazee/travel-explorer/internal/logger"
	"github.com/joefazee/travel-explorer/internal/metrics"
	"github.com/joefazee/travel-explorer/internal/sanitizer"
	"github.com/joefazee/travel-explorer/internal/validator"
	"github.com/joefazee/travel-explorer/models"
)

const cacheKeyPrefix = "booking:"

// service implements the Service interface
type service struct {
	config    *Config
	clock     clock.Clock
	submitter *Submitter
	store     cache.Cache[models.Booking]
	sanitizer sanitizer.HTMLStripperer
	log       logger.Logger
	metrics   *metrics.Registry
}

// ServiceOptions carries the collaborators of the booking service
type ServiceOptions struct {
	Clock     clock.Clock
	Store     cache.Cache[models.Booking]
	Sanitizer sanitizer.HTMLStripperer
	Logger    logger.Logger
	Metrics   *metrics.Registry
}

// NewService creates a new booking service
func NewService(config *Config, opts ServiceOptions) Service {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Store == nil {
		opts.Store = cache.NewMemoryCache[models.Booking]()
	}
	if opts.Sanitizer == nil {
		opts.Sanitizer = sanitizer.NewHTMLStripper()
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNullLogger()
	}
	return &service{
		config:    config,
		clock:     opts.Clock,
		submitter: NewSubmitter(opts.Clock, config.SubmitDelay),
		store:     opts.Store,
		sanitizer: opts.Sanitizer,
		log:       opts.Logger,
		metrics:   opts.Metrics,
	}
}

// NewForm returns a form with default values for destination
func (s *service) NewForm(destination string) *Form {
	return NewForm(s.sanitizer.StripHTML(destination), s.clock.Now())
}

// Validate returns the errors visible on form right now
func (s *service) Validate(form *Form) ValidationResult {
	s.sanitize(form)
	now := s.clock.Now()
	return ValidationResult{
		Valid:  form.Valid(now),
		Errors: form.VisibleErrors(now),
	}
}

// Submit marks the submit attempt and, when the form is valid, records a
// booking in the submitting state and schedules its confirmation.
func (s *service) Submit(ctx context.Context, form *Form) (*models.Booking, *Pending, error) {
	if form.Submitting {
		return nil, nil, models.ErrBookingInFlight
	}

	s.sanitize(form)
	form.SubmitAttempted = true

	now := s.clock.Now()
	if errs := form.Errors(now); len(errs) > 0 {
		s.count("invalid")
		return nil, nil, validator.NewValidationError("Invalid booking", errs)
	}

	form.Submitting = true
	booking := models.Booking{
		ID:            uuid.New(),
		Destination:   form.Destination,
		FirstName:     form.Values.FirstName,
		LastName:      form.Values.LastName,
		Email:         form.Values.Email,
		Travelers:     form.Values.Travelers,
		DepartureDate: form.Values.DepartureDate,
		ReturnDate:    form.Values.ReturnDate,
		Status:        models.BookingStatusSubmitting,
		SubmittedAt:   now,
	}
	if err := s.store.Set(ctx, cacheKey(booking.ID), booking, s.config.RecordTTL); err != nil {
		form.Submitting = false
		return nil, nil, fmt.Errorf("store booking: %w", err)
	}
	s.count("submitted")
	s.log.Info("booking submitting", map[string]interface{}{
		"booking_id":  booking.ID.String(),
		"destination": booking.Destination,
		"travelers":   booking.Travelers,
	})

	pending := s.submitter.Submit(booking, s.confirm)
	return &booking, pending, nil
}

// Get returns the current state of a booking
func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	if id == uuid.Nil {
		return nil, models.ErrInvalidBookingID
	}
	booking, err := s.store.Get(ctx, cacheKey(id))
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, models.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (s *service) confirm(b models.Booking) {
	// the request that scheduled this may be long gone
	if err := s.store.Set(context.Background(), cacheKey(b.ID), b, s.config.RecordTTL); err != nil {
		s.log.Error(err, map[string]interface{}{"booking_id": b.ID.String()})
	}
	s.count("confirmed")
	s.log.Info(b.Message, map[string]interface{}{"booking_id": b.ID.String()})
}

func (s *service) sanitize(form *Form) {
	form.Destination = s.sanitizer.StripHTML(form.Destination)
	form.Values.FirstName = s.sanitizer.StripHTML(form.Values.FirstName)
	form.Values.LastName = s.sanitizer.StripHTML(form.Values.LastName)
	form.Values.Email = s.sanitizer.StripHTML(form.Values.Email)
}

func (s *service) count(result string) {
	if s.metrics != nil {
		s.metrics.Bookings.WithLabelValues(result).Inc()
	}
}

func cacheKey(id uuid.UUID) string {
	return cacheKeyPrefix + id.String()
}
