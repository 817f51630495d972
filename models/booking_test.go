package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooking_Confirm(t *testing.T) {
	b := &Booking{
		ID:          uuid.New(),
		Destination: "Japan",
		Status:      BookingStatusSubmitting,
	}
	assert.True(t, b.IsSubmitting())

	at := time.Date(2026, 11, 1, 12, 0, 0, 0, time.UTC)
	b.Confirm(at)

	assert.False(t, b.IsSubmitting())
	assert.Equal(t, BookingStatusConfirmed, b.Status)
	require.NotNil(t, b.CompletedAt)
	assert.Equal(t, at, *b.CompletedAt)
	assert.Equal(t, "Booking submitted for Japan!", b.Message)
}

func TestBooking_Nights(t *testing.T) {
	dep := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	b := &Booking{DepartureDate: dep, ReturnDate: dep.AddDate(0, 0, 7)}
	assert.Equal(t, 7, b.Nights())
}
