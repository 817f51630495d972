package theme

import (
	"context"

	"github.com/google/uuid"

	"github.com/joefazee/travel-explorer/models"
)

// Service defines the interface for the per-session theme
type Service interface {
	// Mode returns the session's theme, light when none was chosen
	Mode(ctx context.Context, sessionID uuid.UUID) models.ThemeMode
	// Toggle flips the session's theme and returns the new mode
	Toggle(ctx context.Context, sessionID uuid.UUID) (models.ThemeMode, error)
}
