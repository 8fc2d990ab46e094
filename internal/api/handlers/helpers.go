package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"socialflow/internal/repository"
	"socialflow/internal/service"
)

func GetUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals("user_id").(string)
	return userID
}

// RespondError maps the service error kinds onto HTTP statuses.
func RespondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, repository.ErrInvalidReference), errors.Is(err, service.ErrValidation):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, service.ErrAlreadyScheduled), errors.Is(err, service.ErrInvalidTransition):
		status = fiber.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials):
		status = fiber.StatusUnauthorized
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// ParseTimeParam accepts RFC3339 timestamps or bare dates.
func ParseTimeParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
