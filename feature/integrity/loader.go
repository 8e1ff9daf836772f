package integrity

import (
	"github.com/gofiber/fiber/v2"
)

// Feature exposes the integrity checks over HTTP.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new integrity feature around an existing service.
func NewFeature(service *Service) *Feature {
	return &Feature{service: service, handler: NewHandler(service)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "integrity"
}

// IsEnabled reports whether there is anything to check.
func (f *Feature) IsEnabled() bool {
	return f.service.client != nil || f.service.verifier != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
