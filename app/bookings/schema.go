package bookings

import (
	"time"

	"github.com/joefazee/travel-explorer/internal/validator"
)

const (
	FieldFirstName     = "first_name"
	FieldLastName      = "last_name"
	FieldEmail         = "email"
	FieldTravelers     = "travelers"
	FieldDepartureDate = "departure_date"
	FieldReturnDate    = "return_date"
)

const (
	MinTravelers = 1
	MaxTravelers = 10
)

// Values are the editable fields of the booking form. A zero Travelers or
// zero date means the field was left empty.
type Values struct {
	FirstName     string
	LastName      string
	Email         string
	Travelers     int
	DepartureDate time.Time
	ReturnDate    time.Time
}

type rule = validator.Rule[Values]

// NewSchema returns the booking form rules evaluated against now.
func NewSchema(now time.Time) *validator.Schema[Values] {
	return validator.NewSchema[Values]().
		Field(FieldFirstName,
			rule{Check: func(v Values) bool { return validator.NotBlank(v.FirstName) }, Message: "First name is required"},
			rule{Check: func(v Values) bool { return validator.MinRunes(v.FirstName, 2) }, Message: "First name must be at least 2 characters"},
		).
		Field(FieldLastName,
			rule{Check: func(v Values) bool { return validator.NotBlank(v.LastName) }, Message: "Last name is required"},
			rule{Check: func(v Values) bool { return validator.MinRunes(v.LastName, 2) }, Message: "Last name must be at least 2 characters"},
		).
		Field(FieldEmail,
			rule{Check: func(v Values) bool { return validator.NotBlank(v.Email) }, Message: "Email is required"},
			rule{Check: func(v Values) bool { return validator.IsEmail(v.Email) }, Message: "Invalid email address"},
		).
		Field(FieldTravelers,
			rule{Check: func(v Values) bool { return v.Travelers != 0 }, Message: "Number of travelers is required"},
			rule{Check: func(v Values) bool { return v.Travelers >= MinTravelers }, Message: "At least 1 traveler is required"},
			rule{Check: func(v Values) bool { return v.Travelers <= MaxTravelers }, Message: "Maximum 10 travelers allowed"},
		).
		Field(FieldDepartureDate,
			rule{Check: func(v Values) bool { return validator.Present(v.DepartureDate) }, Message: "Departure date is required"},
			rule{Check: func(v Values) bool { return validator.After(v.DepartureDate, now) }, Message: "Departure date must be in the future"},
		).
		Field(FieldReturnDate,
			rule{Check: func(v Values) bool { return validator.Present(v.ReturnDate) }, Message: "Return date is required"},
			rule{Check: func(v Values) bool {
				return !validator.Present(v.DepartureDate) || validator.NotBefore(v.ReturnDate, v.DepartureDate)
			}, Message: "Return date must be after departure date"},
		)
}
