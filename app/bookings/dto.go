package bookings

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joefazee/travel-explorer/models"
)

// DateLayout is the date format of the booking form date fields
const DateLayout = "2006-01-02"

// BookingRequest represents the booking form payload
type BookingRequest struct {
	Destination   string `json:"destination" form:"destination" binding:"required,max=100"`
	FirstName     string `json:"first_name" form:"first_name" binding:"max=100"`
	LastName      string `json:"last_name" form:"last_name" binding:"max=100"`
	Email         string `json:"email" form:"email" binding:"max=254"`
	Travelers     int    `json:"travelers" form:"travelers"`
	DepartureDate string `json:"departure_date" form:"departure_date"`
	ReturnDate    string `json:"return_date" form:"return_date"`
}

// ValidateRequest asks for the errors of the touched fields
type ValidateRequest struct {
	BookingRequest
	Touched         []string `json:"touched" form:"touched"`
	SubmitAttempted bool     `json:"submit_attempted" form:"submit_attempted"`
}

// ValidationResult represents the live validation response
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

// BookingResponse represents the response for booking data
type BookingResponse struct {
	ID            uuid.UUID            `json:"id"`
	Destination   string               `json:"destination"`
	FirstName     string               `json:"first_name"`
	LastName      string               `json:"last_name"`
	Email         string               `json:"email"`
	Travelers     int                  `json:"travelers"`
	DepartureDate string               `json:"departure_date"`
	ReturnDate    string               `json:"return_date"`
	Nights        int                  `json:"nights"`
	Status        models.BookingStatus `json:"status"`
	Message       string               `json:"message,omitempty"`
	SubmittedAt   time.Time            `json:"submitted_at"`
	CompletedAt   *time.Time           `json:"completed_at,omitempty"`
}

// ParseDate accepts YYYY-MM-DD or RFC 3339. An empty string is the zero time.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected %s", s, DateLayout)
	}
	return t, nil
}

// FormatDate renders t for a date input, empty for the zero time
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// ApplyTo copies the request values onto form
func (r *BookingRequest) ApplyTo(form *Form, loc *time.Location) error {
	departure, err := ParseDate(r.DepartureDate, loc)
	if err != nil {
		return err
	}
	ret, err := ParseDate(r.ReturnDate, loc)
	if err != nil {
		return err
	}

	form.Destination = r.Destination
	form.Values = Values{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Travelers:     r.Travelers,
		DepartureDate: departure,
		ReturnDate:    ret,
	}
	return nil
}

// ToBookingResponse converts a booking model to response DTO
func ToBookingResponse(b *models.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		Destination:   b.Destination,
		FirstName:     b.FirstName,
		LastName:      b.LastName,
		Email:         b.Email,
		Travelers:     b.Travelers,
		DepartureDate: FormatDate(b.DepartureDate),
		ReturnDate:    FormatDate(b.ReturnDate),
		Nights:        b.Nights(),
		Status:        b.Status,
		Message:       b.Message,
		SubmittedAt:   b.SubmittedAt,
		CompletedAt:   b.CompletedAt,
	}
}
