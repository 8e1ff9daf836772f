package compare

import (
	"errors"

	"config-diff/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Request is the body accepted by the compare endpoint.
type Request struct {
	HelpFolder string   `json:"help_folder"`
	Folders    []string `json:"folders"`
}

// Handler handles HTTP requests for comparisons.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the compare routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/compare")
	group.Post("/", h.HandleCompare)
}

// HandleCompare compares the requested folders and returns the rows as JSON.
// The report file is not written; use the CLI for that.
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	l := logger.WithRequestID(h.service.logger, c)

	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	l.Info("Comparison requested", zap.String("help_folder", req.HelpFolder), zap.Strings("folders", req.Folders))

	res, err := h.service.Run(c.Context(), req.HelpFolder, req.Folders)
	if err != nil {
		if errors.Is(err, ErrNotEnoughFolders) || errors.Is(err, ErrNoHelpFolder) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Comparison failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(res)
}
