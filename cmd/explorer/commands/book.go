package commands

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/joefazee/travel-explorer/app/bookings"
	"github.com/joefazee/travel-explorer/internal/validator"
)

func bookCmd(e *env) *cobra.Command {
	var req bookings.BookingRequest

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Submit a booking and wait for the confirmation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			svc := e.bookings.Service
			form := svc.NewForm(req.Destination)
			if err := req.ApplyTo(form, time.Local); err != nil {
				return err
			}

			_, pending, err := svc.Submit(cmd.Context(), form)
			var ve *validator.ValidationError
			if errors.As(err, &ve) {
				printFieldErrors(cmd, ve.Fields)
				return errors.New(ve.Message)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(out, "Booking...")
			select {
			case <-pending.Done():
			case <-cmd.Context().Done():
				return cmd.Context().Err()
			}
			form.Complete()

			booking, _ := pending.Result()
			fmt.Fprintln(out, booking.Message)
			fmt.Fprintf(out, "Reference: %s\n", booking.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Destination, "destination", "", "destination country name")
	f.StringVar(&req.FirstName, "first-name", "", "first name")
	f.StringVar(&req.LastName, "last-name", "", "last name")
	f.StringVar(&req.Email, "email", "", "email address")
	f.IntVar(&req.Travelers, "travelers", 1, "number of travelers (1-10)")
	f.StringVar(&req.DepartureDate, "departure", "", "departure date ("+bookings.DateLayout+")")
	f.StringVar(&req.ReturnDate, "return", "", "return date ("+bookings.DateLayout+")")
	_ = cmd.MarkFlagRequired("destination")
	return cmd
}

func printFieldErrors(cmd *cobra.Command, fields map[string]string) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", name, fields[name])
	}
}
