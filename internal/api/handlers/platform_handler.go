package handlers

import (
	"github.com/gofiber/fiber/v2"

	"socialflow/internal/service"
	"socialflow/internal/transfer"
)

type PlatformHandler struct {
	s service.PlatformService
}

func NewPlatformHandler(s service.PlatformService) *PlatformHandler {
	return &PlatformHandler{s: s}
}

func (h *PlatformHandler) ListPlatforms(c *fiber.Ctx) error {
	platforms, err := h.s.List(c.Context())
	if err != nil {
		return RespondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(platforms)
}

func (h *PlatformHandler) ConnectPlatform(c *fiber.Ctx) error {
	var pc transfer.PlatformConnection
	if err := c.BodyParser(&pc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	platform, err := h.s.Connect(c.Context(), pc.Platform, pc.Handle)
	if err != nil {
		return RespondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(platform)
}

func (h *PlatformHandler) DisconnectPlatform(c *fiber.Ctx) error {
	var pc transfer.PlatformConnection
	if err := c.BodyParser(&pc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	platform, err := h.s.Disconnect(c.Context(), pc.Platform)
	if err != nil {
		return RespondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(platform)
}
