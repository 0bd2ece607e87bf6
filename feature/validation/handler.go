package validation

import (
	"errors"

	"results-manager/core/extractor"
	"results-manager/core/legacyhtml"
	"results-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for historical-data validation.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the validation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/validation")
	group.Get("/:chapter/:year", h.HandleValidate)
}

// HandleValidate runs the validation pipeline for one chapter and year
// and returns the full report as JSON. This is a slow endpoint: it
// fetches the legacy page and calls the extraction model.
func (h *Handler) HandleValidate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	chapter := c.Params("chapter")
	year, err := c.ParamsInt("year")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "year must be a number"})
	}

	useCache := c.Query("cache", "true") != "false"

	report, err := h.service.Validate(c.Context(), chapter, year, useCache)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownChapter), errors.Is(err, ErrInvalidYear), errors.Is(err, legacyhtml.ErrNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, extractor.ErrMalformedPayload):
			l.Error("Extractor returned malformed payload", zap.Error(err))
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
		default:
			l.Error("Validation failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.JSON(report)
}
