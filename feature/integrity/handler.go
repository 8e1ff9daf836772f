package integrity

import (
	"config-diff/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/storage", h.HandleStorageCheck)
	group.Get("/schema", h.HandleSchemaCheck)
}

// HandleIntegrityCheck runs all checks. A failing check yields 503.
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRequestID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := h.service.Run(c.Context(), c.Query("fix") == "true")
	if !report.Healthy() {
		l.Warn("Integrity checks failed", zap.String("storage", report.Storage.Status), zap.String("schema", report.Schema.Status))
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}

// HandleStorageCheck checks and optionally creates the report bucket.
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRequestID(h.service.logger, c)
	if h.service.client == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "storage is not configured"})
	}

	report, err := h.service.CheckStorage(c.Context(), c.Query("fix") == "true")
	if err != nil {
		l.Error("Storage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if len(report.Stray) > 0 {
		l.Warn("Stray objects in report bucket", zap.Strings("stray", report.Stray))
	}
	return c.JSON(report)
}

// HandleSchemaCheck checks the history schema.
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRequestID(h.service.logger, c)
	if h.service.verifier == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "database is not configured"})
	}

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}
