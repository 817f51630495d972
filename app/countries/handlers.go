package countries

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/travel-explorer/app/api"
	"github.com/joefazee/travel-explorer/models"
)

// Handler handles HTTP requests for countries
type Handler struct {
	service Service
}

// NewHandler creates a new country handler
func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// Browse godoc
// @Summary List countries
// @Description Search countries by name and page through the matches, ten per page
// @Tags countries
// @Produce json
// @Param search query string false "Case-insensitive name filter"
// @Param page query int false "Page number, clamped into range"
// @Success 200 {object} api.Response{data=[]CountryResponse,meta=ListingMeta}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 502 {object} api.Response{error=api.ErrorInfo}
// @Failure 503 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries [get]
func (h *Handler) Browse(c *gin.Context) {
	var q BrowseQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	listing, err := h.service.Browse(c.Request.Context(), q)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	api.SuccessResponseWithMeta(c, http.StatusOK, "Countries retrieved successfully",
		ToCountryResponseList(listing.Items), ToListingMeta(listing))
}

// GetByCode godoc
// @Summary Get country by code
// @Description Get a single country by its two letter code
// @Tags countries
// @Produce json
// @Param code path string true "Country code"
// @Success 200 {object} api.Response{data=CountryResponse}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 502 {object} api.Response{error=api.ErrorInfo}
// @Failure 503 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries/{code} [get]
func (h *Handler) GetByCode(c *gin.Context) {
	country, err := h.service.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Country retrieved successfully", ToCountryResponse(country))
}

func (h *Handler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrCountriesLoading):
		api.ServiceUnavailableResponse(c, "COUNTRIES_LOADING", "Countries are still loading")
	case errors.Is(err, models.ErrUpstreamUnavailable):
		_ = c.Error(err)
		api.BadGatewayResponse(c, "UPSTREAM_ERROR", err.Error())
	case errors.Is(err, models.ErrRecordNotFound):
		api.NotFoundResponse(c, "Country")
	default:
		_ = c.Error(err)
		api.InternalErrorResponse(c, "Failed to fetch countries")
	}
}
