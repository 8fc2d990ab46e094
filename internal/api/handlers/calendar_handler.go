package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"socialflow/internal/service"
)

type CalendarHandler struct {
	s service.CalendarService
}

func NewCalendarHandler(s service.CalendarService) *CalendarHandler {
	return &CalendarHandler{s: s}
}

func (h *CalendarHandler) Month(c *fiber.Ctx) error {
	anchor := time.Now().UTC()
	if v := c.Query("anchor"); v != "" {
		parsed, err := ParseTimeParam(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid anchor date",
			})
		}
		anchor = parsed
	}

	buckets, err := h.s.BucketsForMonth(c.Context(), anchor)
	if err != nil {
		return RespondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(buckets)
}

func (h *CalendarHandler) Day(c *fiber.Ctx) error {
	day := time.Now().UTC()
	if v := c.Query("date"); v != "" {
		parsed, err := ParseTimeParam(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid date",
			})
		}
		day = parsed
	}

	bucket, err := h.s.BucketForDay(c.Context(), day)
	if err != nil {
		return RespondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(bucket)
}

func (h *CalendarHandler) Upcoming(c *fiber.Ctx) error {
	days := 7
	if v := c.Query("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid days value",
			})
		}
		days = parsed
	}

	items, err := h.s.Upcoming(c.Context(), days)
	if err != nil {
		return RespondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(items)
}
