package history

import (
	"errors"

	"config-diff/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for run history.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the history routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/history")
	group.Get("/", h.HandleRecent)
	group.Get("/:id", h.HandleGet)
}

// HandleRecent lists the latest runs. Supports ?limit=N.
func (h *Handler) HandleRecent(c *fiber.Ctx) error {
	l := logger.WithRequestID(h.service.logger, c)

	runs, err := h.service.Recent(c.Context(), c.QueryInt("limit", 20))
	if err != nil {
		l.Error("Listing runs failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(runs)
}

// HandleGet returns one run with its rows.
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id := c.Params("id")
	l := logger.WithRequestID(h.service.logger, c)

	run, err := h.service.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, ErrRunNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Loading run failed", zap.String("run_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(run)
}
