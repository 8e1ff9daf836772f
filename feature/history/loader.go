package history

import (
	"github.com/gofiber/fiber/v2"
)

// Feature exposes run history over HTTP.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new history feature. A nil service disables it.
func NewFeature(service *Service) *Feature {
	f := &Feature{service: service}
	if service != nil {
		f.handler = NewHandler(service)
	}
	return f
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "history"
}

// IsEnabled reports whether a database is available.
func (f *Feature) IsEnabled() bool {
	return f.service != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
