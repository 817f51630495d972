package countries

import (
	"fmt"

	"github.com/joefazee/travel-explorer/models"
)

func sampleCountries() []models.Country {
	return []models.Country{
		{Code: "AE", Name: "United Arab Emirates", Emoji: "🇦🇪", Capital: "Abu Dhabi", Currency: "AED", Continent: models.Continent{Name: "Asia"}},
		{Code: "AQ", Name: "Antarctica", Emoji: "🇦🇶", Continent: models.Continent{Name: "Antarctica"}},
		{Code: "DE", Name: "Germany", Emoji: "🇩🇪", Capital: "Berlin", Currency: "EUR", Continent: models.Continent{Name: "Europe"}},
		{Code: "GB", Name: "United Kingdom", Emoji: "🇬🇧", Capital: "London", Currency: "GBP", Continent: models.Continent{Name: "Europe"}},
		{Code: "NG", Name: "Nigeria", Emoji: "🇳🇬", Capital: "Abuja", Currency: "NGN", Continent: models.Continent{Name: "Africa"}},
		{Code: "US", Name: "United States", Emoji: "🇺🇸", Capital: "Washington D.C.", Currency: "USD,USN,USS", Continent: models.Continent{Name: "North America"}},
	}
}

// numberedCountries returns n records named "Country 001", "Country 002", ...
func numberedCountries(n int) []models.Country {
	out := make([]models.Country, n)
	for i := range out {
		out[i] = models.Country{
			Code:      fmt.Sprintf("C%03d", i+1),
			Name:      fmt.Sprintf("Country %03d", i+1),
			Continent: models.Continent{Name: "Europe"},
		}
	}
	return out
}
