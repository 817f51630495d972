package theme

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/travel-explorer/app/api"
	"github.com/joefazee/travel-explorer/models"
)

// Handler handles HTTP requests for the theme
type Handler struct {
	service Service
}

// NewHandler creates a new theme handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Get godoc
// @Summary Get the theme
// @Description Returns the theme mode of the current session
// @Tags theme
// @Produce json
// @Success 200 {object} api.Response{data=ThemeResponse}
// @Router /api/v1/theme [get]
func (h *Handler) Get(c *gin.Context) {
	api.SuccessResponse(c, http.StatusOK, "Theme retrieved successfully", ToThemeResponse(h.Current(c)))
}

// Toggle godoc
// @Summary Toggle the theme
// @Description Switches the current session between light and dark mode
// @Tags theme
// @Produce json
// @Success 200 {object} api.Response{data=ThemeResponse}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/theme/toggle [post]
func (h *Handler) Toggle(c *gin.Context) {
	mode, ok := h.toggle(c)
	if !ok {
		api.InternalErrorResponse(c, "Failed to toggle theme")
		return
	}
	api.SuccessResponse(c, http.StatusOK, "Theme toggled", ToThemeResponse(mode))
}

// TogglePage flips the theme from the page form and goes back where it came from
func (h *Handler) TogglePage(c *gin.Context) {
	h.toggle(c)
	c.Redirect(http.StatusSeeOther, backTo(c))
}

// Current returns the session's mode, light without a session
func (h *Handler) Current(c *gin.Context) models.ThemeMode {
	id, ok := SessionID(c)
	if !ok {
		return models.ThemeLight
	}
	return h.service.Mode(c.Request.Context(), id)
}

func (h *Handler) toggle(c *gin.Context) (models.ThemeMode, bool) {
	id, ok := SessionID(c)
	if !ok {
		return models.ThemeLight, false
	}
	mode, err := h.service.Toggle(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return mode, false
	}
	return mode, true
}

// backTo returns the local path of the referring page, or "/".
func backTo(c *gin.Context) string {
	if next := c.PostForm("next"); isLocalPath(next) {
		return next
	}
	ref, err := url.Parse(c.Request.Referer())
	if err != nil || ref.Path == "" || (ref.Host != "" && ref.Host != c.Request.Host) {
		return "/"
	}
	if ref.RawQuery != "" {
		return ref.Path + "?" + ref.RawQuery
	}
	return ref.Path
}

func isLocalPath(p string) bool {
	if p == "" || p[0] != '/' || len(p) > 1 && (p[1] == '/' || p[1] == '\\') {
		return false
	}
	u, err := url.Parse(p)
	return err == nil && u.Host == "" && u.Scheme == ""
}
