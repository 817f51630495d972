package web

import (
	"github.com/joefazee/travel-explorer/app/bookings"
	"github.com/joefazee/travel-explorer/app/countries"
	"github.com/joefazee/travel-explorer/models"
)

// Page carries what the shared header needs
type Page struct {
	Title   string
	Theme   models.ThemeMode
	Path    string
	Refresh int
}

// IndexView is the country list page
type IndexView struct {
	Page
	Search    string
	State     countries.State
	Error     string
	Listing   *countries.Listing
	Skeletons []int
}

// BookView is the booking form page
type BookView struct {
	Page
	Code            string
	Destination     string
	Values          bookings.Values
	Errors          map[string]string
	Submitting      bool
	Today           string
	TravelerOptions []int
}

// BookingView is the submission status page
type BookingView struct {
	Page
	Booking *models.Booking
}

// ErrorView is shown when a page cannot be rendered
type ErrorView struct {
	Page
	Message string
}
