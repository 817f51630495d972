package countries

import (
	"github.com/joefazee/travel-explorer/app/api"
	"github.com/joefazee/travel-explorer/models"
)

// BrowseQuery represents the query string of the country list
type BrowseQuery struct {
	Search string `form:"search" binding:"max=100"`
	Page   int    `form:"page"`
}

// CountryResponse represents the response for country data
type CountryResponse struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Emoji     string `json:"emoji"`
	Capital   string `json:"capital,omitempty"`
	Currency  string `json:"currency,omitempty"`
	Continent string `json:"continent"`
}

// ListingMeta extends the pagination metadata with the list view state
type ListingMeta struct {
	api.PaginationMeta
	Search         string `json:"search"`
	ShowPagination bool   `json:"show_pagination"`
	Empty          bool   `json:"empty"`
}

// ToCountryResponse converts a country model to response DTO
func ToCountryResponse(country *models.Country) *CountryResponse {
	return &CountryResponse{
		Code:      country.Code,
		Name:      country.Name,
		Emoji:     country.Emoji,
		Capital:   country.Capital,
		Currency:  country.Currency,
		Continent: country.Continent.Name,
	}
}

// ToCountryResponseList converts a slice of country models to response DTOs
func ToCountryResponseList(countries []models.Country) []CountryResponse {
	responses := make([]CountryResponse, len(countries))
	for i := range countries {
		responses[i] = *ToCountryResponse(&countries[i])
	}
	return responses
}

// ToListingMeta converts a listing to response metadata
func ToListingMeta(l *Listing) ListingMeta {
	return ListingMeta{
		PaginationMeta: api.NewPaginationMeta(l.Page, PageSize, int64(l.Total), l.TotalPages),
		Search:         l.Search,
		ShowPagination: l.ShowPagination,
		Empty:          l.Empty,
	}
}
