package bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joefazee/travel-explorer/app/api"
	"github.com/joefazee/travel-explorer/internal/validator"
	"github.com/joefazee/travel-explorer/models"
)

// Handler handles HTTP requests for bookings
type Handler struct {
	service  Service
	location *time.Location
}

// NewHandler creates a new booking handler
func NewHandler(service Service) *Handler {
	return &Handler{
		service:  service,
		location: time.Local,
	}
}

// Validate godoc
// @Summary Validate a booking form
// @Description Returns the errors of the touched fields, or of every field once a submit was attempted
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body ValidateRequest true "Form values and touched fields"
// @Success 200 {object} api.Response{data=ValidationResult}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/bookings/validate [post]
func (h *Handler) Validate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	form := h.service.NewForm(req.Destination)
	if err := req.ApplyTo(form, h.location); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}
	form.Touch(req.Touched...)
	form.SubmitAttempted = req.SubmitAttempted

	api.SuccessResponse(c, http.StatusOK, "Booking form validated", h.service.Validate(form))
}

// Submit godoc
// @Summary Submit a booking
// @Description Validates the booking and simulates its submission; poll the booking until it is confirmed
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body BookingRequest true "Booking form"
// @Success 202 {object} api.Response{data=BookingResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 429 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/bookings [post]
func (h *Handler) Submit(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	form := h.service.NewForm(req.Destination)
	if err := req.ApplyTo(form, h.location); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	booking, _, err := h.service.Submit(c.Request.Context(), form)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	api.AcceptedResponse(c, "Booking...", ToBookingResponse(booking))
}

// Get godoc
// @Summary Get a booking
// @Description Returns the current status of a submitted booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} api.Response{data=BookingResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/bookings/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid id format")
		return
	}

	booking, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	message := "Booking..."
	if !booking.IsSubmitting() {
		message = booking.Message
	}
	api.SuccessResponse(c, http.StatusOK, message, ToBookingResponse(booking))
}

func (h *Handler) handleServiceError(c *gin.Context, err error) {
	var ve *validator.ValidationError
	switch {
	case errors.As(err, &ve):
		api.ValidationErrorResponse(c, ve.Fields)
	case errors.Is(err, models.ErrBookingNotFound):
		api.NotFoundResponse(c, "Booking")
	case errors.Is(err, models.ErrInvalidBookingID):
		api.BadRequestResponse(c, err.Error())
	default:
		_ = c.Error(err)
		api.InternalErrorResponse(c, "Failed to submit booking")
	}
}
