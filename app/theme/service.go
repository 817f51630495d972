package theme

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/joefazee/travel-explorer/internal/cache"
	"github.com/joefazee/travel-explorer/internal/logger"
	"github.com/joefazee/travel-explorer/models"
)

const cacheKeyPrefix = "theme:"

type service struct {
	store cache.Cache[string]
	ttl   time.Duration
	log   logger.Logger
}

// NewService creates a theme service keeping modes in store for ttl
func NewService(store cache.Cache[string], ttl time.Duration, log logger.Logger) Service {
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &service{store: store, ttl: ttl, log: log}
}

func (s *service) Mode(ctx context.Context, sessionID uuid.UUID) models.ThemeMode {
	raw, err := s.store.Get(ctx, cacheKey(sessionID))
	if err != nil {
		return models.ThemeLight
	}
	mode, err := models.ParseThemeMode(raw)
	if err != nil {
		s.log.Warn("discarding stored theme", map[string]interface{}{"value": raw})
		return models.ThemeLight
	}
	return mode
}

func (s *service) Toggle(ctx context.Context, sessionID uuid.UUID) (models.ThemeMode, error) {
	next := s.Mode(ctx, sessionID).Toggle()
	if err := s.store.Set(ctx, cacheKey(sessionID), string(next), s.ttl); err != nil {
		return s.Mode(ctx, sessionID), fmt.Errorf("store theme: %w", err)
	}
	return next, nil
}

func cacheKey(id uuid.UUID) string {
	return cacheKeyPrefix + id.String()
}
