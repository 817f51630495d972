package commands

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joefazee/travel-explorer/app/countries"
)

const browseHelp = "n next, p prev, <number> go to page, /text search, / clear, q quit"

func browseCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Page through the country list interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := e.loadCountries(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			pager := countries.NewPager()
			in := bufio.NewScanner(cmd.InOrStdin())
			for {
				listing, err := svc.Browse(cmd.Context(), countries.BrowseQuery{Search: pager.Search(), Page: pager.Page()})
				if err != nil {
					return err
				}
				pager.SetTotalPages(listing.TotalPages)
				printListing(out, listing)
				fmt.Fprintf(out, "[%s]> ", browseHelp)

				if !in.Scan() {
					fmt.Fprintln(out)
					return in.Err()
				}
				if quit := apply(pager, strings.TrimSpace(in.Text())); quit {
					return nil
				}
			}
		},
	}
}

// apply runs one browse command against pager and reports whether to quit
func apply(pager *countries.Pager, line string) bool {
	switch {
	case line == "q":
		return true
	case line == "n":
		pager.Next()
	case line == "p":
		pager.Prev()
	case line == "/":
		pager.Clear()
	case strings.HasPrefix(line, "/"):
		pager.SetSearch(line[1:])
	default:
		if page, err := strconv.Atoi(line); err == nil {
			pager.Select(page)
		}
	}
	return false
}
