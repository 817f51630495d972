package theme

import "github.com/joefazee/travel-explorer/models"

// ThemeResponse represents the response for theme data
type ThemeResponse struct {
	Mode models.ThemeMode `json:"mode"`
	Icon string           `json:"icon"`
	Dark bool             `json:"dark"`
}

// ToThemeResponse converts a mode to response DTO
func ToThemeResponse(mode models.ThemeMode) ThemeResponse {
	return ThemeResponse{
		Mode: mode,
		Icon: mode.Icon(),
		Dark: mode.IsDark(),
	}
}
