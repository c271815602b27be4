package history

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	enabled bool
	handler *Handler
}

// NewFeature creates the history feature. A nil db disables it.
func NewFeature(db *gorm.DB, cfg Config, logger *zap.Logger) *Feature {
	if db == nil || !cfg.Enabled {
		return &Feature{}
	}
	return &Feature{
		enabled: true,
		handler: NewHandler(NewRepository(db), logger, cfg.DefaultLimit),
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "history"
}

// IsEnabled reports whether a database is available.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
