package registration

import (
	"results-manager/core/logger"
	"results-manager/feature/registration/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for rider candidate matching.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the registration routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/registration")
	group.Post("/candidates", h.HandleCandidates)
}

type candidatesRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type candidatesResponse struct {
	ExactMatch bool               `json:"exact_match"`
	Candidates []models.Candidate `json:"candidates"`
}

// HandleCandidates suggests existing rider records for a registration.
// A known email wins outright; otherwise candidates are ranked by name
// similarity against riders with no email on file.
func (h *Handler) HandleCandidates(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req candidatesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if req.Email != "" {
		candidate, err := h.service.MatchByEmail(c.Context(), req.Email)
		if err != nil {
			l.Error("Email lookup failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if candidate != nil {
			return c.JSON(candidatesResponse{
				ExactMatch: true,
				Candidates: []models.Candidate{*candidate},
			})
		}
	}

	candidates := h.service.FindCandidates(c.Context(), req.FirstName, req.LastName)
	return c.JSON(candidatesResponse{ExactMatch: false, Candidates: candidates})
}
