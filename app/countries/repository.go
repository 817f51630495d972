package countries

import (
	"context"
	"fmt"
	"net/http"

	"github.com/machinebox/graphql"

	"github.com/joefazee/travel-explorer/models"
)

const countriesQuery = `query Countries {
  countries {
    code
    name
    emoji
    capital
    currency
    continent {
      name
    }
  }
}`

type countriesPayload struct {
	Countries []models.Country `json:"countries"`
}

// repository implements the Repository interface over the GraphQL API
type repository struct {
	client *graphql.Client
}

// NewRepository creates a new country repository talking to endpoint
func NewRepository(endpoint string, httpClient *http.Client) Repository {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &repository{
		client: graphql.NewClient(endpoint, graphql.WithHTTPClient(httpClient)),
	}
}

// FetchAll runs the parameterless countries query
func (r *repository) FetchAll(ctx context.Context) ([]models.Country, error) {
	req := graphql.NewRequest(countriesQuery)
	req.Header.Set("Cache-Control", "no-cache")

	var payload countriesPayload
	if err := r.client.Run(ctx, req, &payload); err != nil {
		return nil, fmt.Errorf("fetch countries: %w", err)
	}
	return payload.Countries, nil
}
