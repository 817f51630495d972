package models

import "strings"

// Continent is the continent a country belongs to
type Continent struct {
	Name string `json:"name"`
}

// Country represents a country record returned by the countries API.
// Records are never mutated once decoded.
type Country struct {
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Emoji     string    `json:"emoji"`
	Capital   string    `json:"capital,omitempty"`
	Currency  string    `json:"currency,omitempty"`
	Continent Continent `json:"continent"`
}

// Validate checks the fields every record must carry
func (c *Country) Validate() error {
	if strings.TrimSpace(c.Code) == "" {
		return ErrInvalidCountryCode
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrInvalidCountryName
	}
	return nil
}

// HasCapital reports whether the capital is known
func (c *Country) HasCapital() bool {
	return c.Capital != ""
}

// HasCurrency reports whether the currency is known
func (c *Country) HasCurrency() bool {
	return c.Currency != ""
}

// MatchesName reports whether term is a case-insensitive substring of the name.
func (c *Country) MatchesName(term string) bool {
	return strings.Contains(strings.ToLower(c.Name), strings.ToLower(term))
}
