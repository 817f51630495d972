package countries

import (
	"github.com/joefazee/travel-explorer/models"
)

// PageSize is the number of countries shown per page
const PageSize = 10

// Listing is everything needed to render one page of the country list
type Listing struct {
	Search         string
	Page           int
	Total          int
	TotalPages     int
	Items          []models.Country
	ShowPagination bool
	Empty          bool
}

// Filter keeps the records whose name contains search, ignoring case.
// Source order is preserved and an empty search keeps everything.
func Filter(all []models.Country, search string) []models.Country {
	if search == "" {
		return all
	}
	out := make([]models.Country, 0, len(all))
	for i := range all {
		if all[i].MatchesName(search) {
			out = append(out, all[i])
		}
	}
	return out
}

// Paginate returns at most size records starting at offset (page-1)*size.
func Paginate(filtered []models.Country, page, size int) []models.Country {
	if page < 1 || size < 1 {
		return []models.Country{}
	}
	start := (page - 1) * size
	if start >= len(filtered) {
		return []models.Country{}
	}
	end := start + size
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// TotalPages is ceil(count/size)
func TotalPages(count, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// BuildListing filters all by search and cuts out page
func BuildListing(all []models.Country, search string, page int) *Listing {
	return newListing(Filter(all, search), search, page)
}

func newListing(filtered []models.Country, search string, page int) *Listing {
	total := len(filtered)
	return &Listing{
		Search:         search,
		Page:           page,
		Total:          total,
		TotalPages:     TotalPages(total, PageSize),
		Items:          Paginate(filtered, page, PageSize),
		ShowPagination: total > PageSize,
		Empty:          total == 0,
	}
}

// Pages lists the page numbers for the page selector
func (l *Listing) Pages() []int {
	pages := make([]int, l.TotalPages)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

// HasPrev reports whether a previous page exists
func (l *Listing) HasPrev() bool { return l.Page > 1 }

// HasNext reports whether a next page exists
func (l *Listing) HasNext() bool { return l.Page < l.TotalPages }
