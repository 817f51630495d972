package bookings

import (
	"time"
)

const day = 24 * time.Hour

// Form is the state of one booking form: its values, the fields the user
// has left, whether a submit was attempted and whether one is in flight.
type Form struct {
	Destination     string
	Values          Values
	Touched         map[string]bool
	SubmitAttempted bool
	Submitting      bool
}

// NewForm returns a form for destination with the default values:
// one traveler, departure tomorrow and return a week after that.
func NewForm(destination string, now time.Time) *Form {
	return &Form{
		Destination: destination,
		Values: Values{
			Travelers:     1,
			DepartureDate: now.Add(day),
			ReturnDate:    now.Add(8 * day),
		},
		Touched: make(map[string]bool),
	}
}

// Touch marks fields as visited
func (f *Form) Touch(fields ...string) {
	if f.Touched == nil {
		f.Touched = make(map[string]bool)
	}
	for _, field := range fields {
		f.Touched[field] = true
	}
}

// Errors returns the first failing message of every invalid field
func (f *Form) Errors(now time.Time) map[string]string {
	return NewSchema(now).Validate(f.Values).Errors
}

// VisibleErrors returns the errors the user should see: those of touched
// fields, or all of them once a submit was attempted.
func (f *Form) VisibleErrors(now time.Time) map[string]string {
	all := f.Errors(now)
	if f.SubmitAttempted {
		return all
	}
	visible := make(map[string]string, len(all))
	for field, msg := range all {
		if f.Touched[field] {
			visible[field] = msg
		}
	}
	return visible
}

// Valid reports whether every field passes
func (f *Form) Valid(now time.Time) bool {
	return len(f.Errors(now)) == 0
}

// Complete clears the submitting flag once the submission resolved
func (f *Form) Complete() {
	f.Submitting = false
}
