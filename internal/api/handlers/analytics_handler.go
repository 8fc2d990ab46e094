package handlers

import (
	"github.com/gofiber/fiber/v2"

	"socialflow/internal/service"
)

type AnalyticsHandler struct {
	s service.AnalyticsService
}

func NewAnalyticsHandler(s service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{s: s}
}

func (h *AnalyticsHandler) GetAnalytics(c *fiber.Ctx) error {
	analytics, err := h.s.Overview(c.Context())
	if err != nil {
		return RespondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(analytics)
}
