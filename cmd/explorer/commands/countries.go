package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joefazee/travel-explorer/app/countries"
	"github.com/joefazee/travel-explorer/models"
)

func countriesCmd(e *env) *cobra.Command {
	var q countries.BrowseQuery

	cmd := &cobra.Command{
		Use:   "countries",
		Short: "Print one page of the country list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := e.loadCountries(cmd)
			if err != nil {
				return err
			}
			listing, err := svc.Browse(cmd.Context(), q)
			if err != nil {
				return err
			}
			printListing(cmd.OutOrStdout(), listing)
			return nil
		},
	}
	cmd.Flags().StringVarP(&q.Search, "search", "s", "", "case-insensitive name filter")
	cmd.Flags().IntVarP(&q.Page, "page", "p", 1, "page number")
	return cmd
}

// loadCountries starts the shared load and blocks until it settles
func (e *env) loadCountries(cmd *cobra.Command) (countries.Service, error) {
	e.countries.Start(cmd.Context())
	st, err := e.countries.Accessor.Wait(cmd.Context())
	if err != nil {
		return nil, err
	}
	if st.State == countries.StateFailed {
		return nil, st.Err
	}
	return e.countries.Service, nil
}

func printListing(w io.Writer, l *countries.Listing) {
	if l.Empty {
		fmt.Fprintf(w, "No countries found matching %q\n", l.Search)
		return
	}
	fmt.Fprintf(w, "Found %d countries\n", l.Total)
	for i := range l.Items {
		fmt.Fprintln(w, formatCountry(&l.Items[i]))
	}
	if l.ShowPagination {
		fmt.Fprintf(w, "Page %d of %d\n", l.Page, l.TotalPages)
	}
}

func formatCountry(c *models.Country) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s (%s)", c.Emoji, c.Name, c.Code)
	if c.HasCapital() {
		fmt.Fprintf(&b, "  Capital: %s", c.Capital)
	}
	if c.HasCurrency() {
		fmt.Fprintf(&b, "  Currency: %s", c.Currency)
	}
	fmt.Fprintf(&b, "  Continent: %s", c.Continent.Name)
	return b.String()
}
