package web

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/google/uuid"

	"github.com/joefazee/travel-explorer/app/bookings"
	"github.com/joefazee/travel-explorer/app/countries"
	"github.com/joefazee/travel-explorer/app/theme"
	"github.com/joefazee/travel-explorer/internal/validator"
	"github.com/joefazee/travel-explorer/models"
)

var skeletons = []int{0, 1, 2}

// Handler renders the HTML pages
type Handler struct {
	countries countries.Service
	bookings  bookings.Service
	theme     *theme.Handler
	clock     clock.Clock
	location  *time.Location
	tmpl      *template.Template
}

// NewHandler creates a new page handler
func NewHandler(cs countries.Service, bs bookings.Service, th *theme.Handler, clk clock.Clock, tmpl *template.Template) *Handler {
	return &Handler{
		countries: cs,
		bookings:  bs,
		theme:     th,
		clock:     clk,
		location:  time.Local,
		tmpl:      tmpl,
	}
}

// Index renders the searchable, paginated country list
func (h *Handler) Index(c *gin.Context) {
	search := c.Query("search")
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	view := IndexView{Page: h.page(c, ""), Search: search}
	listing, err := h.countries.Browse(c.Request.Context(), countries.BrowseQuery{Search: search, Page: page})
	switch {
	case err == nil:
		view.State = countries.StateSucceeded
		view.Listing = listing
	case errors.Is(err, models.ErrCountriesLoading):
		view.State = countries.StatePending
		view.Skeletons = skeletons
		view.Refresh = 1
	default:
		_ = c.Error(err)
		view.State = countries.StateFailed
		view.Error = err.Error()
	}

	status := http.StatusOK
	if view.State == countries.StateFailed {
		status = http.StatusBadGateway
	}
	h.render(c, status, "index", view)
}

// Book renders an empty booking form for the destination
func (h *Handler) Book(c *gin.Context) {
	country, ok := h.destination(c)
	if !ok {
		return
	}

	form := h.bookings.NewForm(country.Name)
	h.renderForm(c, http.StatusOK, country, form, nil)
}

// SubmitBooking validates the posted form and either shows the errors or
// moves on to the status page of the new booking.
func (h *Handler) SubmitBooking(c *gin.Context) {
	country, ok := h.destination(c)
	if !ok {
		return
	}

	var req bookings.BookingRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderError(c, http.StatusBadRequest, "Invalid booking form")
		return
	}
	req.Destination = country.Name

	form := h.bookings.NewForm(country.Name)
	if err := req.ApplyTo(form, h.location); err != nil {
		h.renderError(c, http.StatusBadRequest, err.Error())
		return
	}

	booking, _, err := h.bookings.Submit(c.Request.Context(), form)
	if err != nil {
		var ve *validator.ValidationError
		if errors.As(err, &ve) {
			h.renderForm(c, http.StatusUnprocessableEntity, country, form, ve.Fields)
			return
		}
		_ = c.Error(err)
		h.renderError(c, http.StatusInternalServerError, "Failed to submit booking")
		return
	}

	c.Redirect(http.StatusSeeOther, "/bookings/"+booking.ID.String())
}

// Booking shows the submission status, refreshing until it is confirmed
func (h *Handler) Booking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.renderError(c, http.StatusNotFound, "Booking not found")
		return
	}

	booking, err := h.bookings.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrBookingNotFound) {
			h.renderError(c, http.StatusNotFound, "Booking not found")
			return
		}
		_ = c.Error(err)
		h.renderError(c, http.StatusInternalServerError, "Failed to load booking")
		return
	}

	view := BookingView{Page: h.page(c, booking.Destination), Booking: booking}
	if booking.IsSubmitting() {
		view.Refresh = 1
	}
	h.render(c, http.StatusOK, "booking", view)
}

func (h *Handler) destination(c *gin.Context) (*models.Country, bool) {
	country, err := h.countries.GetByCode(c.Request.Context(), c.Param("code"))
	if err == nil {
		return country, true
	}

	switch {
	case errors.Is(err, models.ErrCountriesLoading):
		view := ErrorView{Page: h.page(c, ""), Message: "Countries are still loading"}
		view.Refresh = 1
		h.render(c, http.StatusServiceUnavailable, "error", view)
	case errors.Is(err, models.ErrRecordNotFound):
		h.renderError(c, http.StatusNotFound, "Country not found")
	default:
		_ = c.Error(err)
		h.renderError(c, http.StatusBadGateway, "Error: "+err.Error())
	}
	return nil, false
}

func (h *Handler) renderForm(c *gin.Context, status int, country *models.Country, form *bookings.Form, errs map[string]string) {
	if errs == nil {
		errs = map[string]string{}
	}
	options := make([]int, 0, bookings.MaxTravelers)
	for n := bookings.MinTravelers; n <= bookings.MaxTravelers; n++ {
		options = append(options, n)
	}

	h.render(c, status, "book", BookView{
		Page:            h.page(c, "Book "+country.Name),
		Code:            country.Code,
		Destination:     form.Destination,
		Values:          form.Values,
		Errors:          errs,
		Submitting:      form.Submitting,
		Today:           bookings.FormatDate(h.clock.Now()),
		TravelerOptions: options,
	})
}

func (h *Handler) renderError(c *gin.Context, status int, message string) {
	h.render(c, status, "error", ErrorView{Page: h.page(c, ""), Message: message})
}

func (h *Handler) page(c *gin.Context, title string) Page {
	return Page{
		Title: title,
		Theme: h.theme.Current(c),
		Path:  c.Request.URL.RequestURI(),
	}
}

func (h *Handler) render(c *gin.Context, status int, name string, data interface{}) {
	c.Render(status, render.HTML{Template: h.tmpl, Name: name, Data: data})
}
