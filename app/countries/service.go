package countries

import (
	"context"
	"strings"

	"github.com/joefazee/travel-explorer/models"
)

// service implements the Service interface
type service struct {
	accessor *Accessor
}

// NewService creates a new country service reading from accessor
func NewService(accessor *Accessor) Service {
	return &service{
		accessor: accessor,
	}
}

// Browse returns one page of the countries matching the search.
// Out of range pages are clamped.
func (s *service) Browse(ctx context.Context, q BrowseQuery) (*Listing, error) {
	list, err := s.countries(ctx)
	if err != nil {
		return nil, err
	}

	filtered := Filter(list, q.Search)

	pager := NewPager()
	pager.SetSearch(q.Search)
	pager.SetTotalPages(TotalPages(len(filtered), PageSize))
	pager.Select(q.Page)

	return newListing(filtered, q.Search, pager.Page()), nil
}

// GetByCode returns a country by its code, ignoring case
func (s *service) GetByCode(ctx context.Context, code string) (*models.Country, error) {
	list, err := s.countries(ctx)
	if err != nil {
		return nil, err
	}

	code = strings.TrimSpace(code)
	for i := range list {
		if strings.EqualFold(list[i].Code, code) {
			country := list[i]
			return &country, nil
		}
	}
	return nil, models.ErrRecordNotFound
}

// State returns the load state of the underlying list
func (s *service) State() LoadState {
	return s.accessor.Snapshot()
}

func (s *service) countries(ctx context.Context) ([]models.Country, error) {
	if s.accessor.Expired() {
		_ = s.accessor.Refresh(ctx)
	}

	st := s.accessor.Snapshot()
	switch st.State {
	case StateSucceeded:
		return st.Countries, nil
	case StateFailed:
		return nil, st.Err
	default:
		return nil, models.ErrCountriesLoading
	}
}
