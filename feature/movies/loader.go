package movies

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	coord   *Coordinator
	handler *Handler
	enabled bool
}

// NewFeature creates the catalog feature around a coordinator.
func NewFeature(coord *Coordinator, logger *zap.Logger, enabled bool) *Feature {
	return &Feature{
		coord:   coord,
		handler: NewHandler(coord, logger),
		enabled: enabled,
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "catalog"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
