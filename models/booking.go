package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the lifecycle state of a simulated booking
type BookingStatus string

const (
	BookingStatusSubmitting BookingStatus = "submitting"
	BookingStatusConfirmed  BookingStatus = "confirmed"
)

// Booking represents a trip booking accepted by the booking form.
// Bookings are held in memory only while the submission is simulated.
type Booking struct {
	ID            uuid.UUID     `json:"id"`
	Destination   string        `json:"destination"`
	FirstName     string        `json:"first_name"`
	LastName      string        `json:"last_name"`
	Email         string        `json:"email"`
	Travelers     int           `json:"travelers"`
	DepartureDate time.Time     `json:"departure_date"`
	ReturnDate    time.Time     `json:"return_date"`
	Status        BookingStatus `json:"status"`
	Message       string        `json:"message,omitempty"`
	SubmittedAt   time.Time     `json:"submitted_at"`
	CompletedAt   *time.Time    `json:"completed_at,omitempty"`
}

// IsSubmitting reports whether the simulated submission is still in flight
func (b *Booking) IsSubmitting() bool {
	return b.Status == BookingStatusSubmitting
}

// Confirm completes the booking at the given time
func (b *Booking) Confirm(at time.Time) {
	b.Status = BookingStatusConfirmed
	b.CompletedAt = &at
	b.Message = Acknowledgement(b.Destination)
}

// Nights returns the length of the trip in whole days
func (b *Booking) Nights() int {
	return int(b.ReturnDate.Sub(b.DepartureDate).Hours() / 24)
}

// Acknowledgement is the message shown once a booking for destination completes.
func Acknowledgement(destination string) string {
	return fmt.Sprintf("Booking submitted for %s!", destination)
}
