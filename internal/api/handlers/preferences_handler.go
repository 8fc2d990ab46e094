package handlers

import (
	"github.com/gofiber/fiber/v2"

	"socialflow/internal/service"
	"socialflow/internal/transfer"
)

type PreferencesHandler struct {
	s service.PreferencesService
}

func NewPreferencesHandler(s service.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{s: s}
}

func (h *PreferencesHandler) GetPreferences(c *fiber.Ctx) error {
	prefs, err := h.s.Get(c.Context())
	if err != nil {
		return RespondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(prefs)
}

func (h *PreferencesHandler) UpdatePreferences(c *fiber.Ctx) error {
	var upd transfer.PreferencesUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	prefs, err := h.s.Update(c.Context(), &upd)
	if err != nil {
		return RespondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(prefs)
}

func (h *PreferencesHandler) UpdateTheme(c *fiber.Ctx) error {
	var tu transfer.ThemeUpdate
	if err := c.BodyParser(&tu); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	theme, err := h.s.SetTheme(c.Context(), tu.Theme)
	if err != nil {
		return RespondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"theme": theme,
	})
}
