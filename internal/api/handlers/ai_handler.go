package handlers

import (
	"github.com/gofiber/fiber/v2"

	"socialflow/internal/service"
	"socialflow/internal/transfer"
)

type AIHandler struct {
	s service.AIService
}

func NewAIHandler(s service.AIService) *AIHandler {
	return &AIHandler{s: s}
}

func (h *AIHandler) Generate(c *fiber.Ctx) error {
	var req transfer.GenerationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	result, err := h.s.Generate(c.Context(), &req)
	if err != nil {
		return RespondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
