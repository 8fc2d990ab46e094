package handlers

import (
	"github.com/gofiber/fiber/v2"

	"socialflow/internal/service"
	"socialflow/internal/transfer"
)

type PostHandler struct {
	s     service.PostService
	sched service.SchedulerService
}

func NewPostHandler(s service.PostService, sched service.SchedulerService) *PostHandler {
	return &PostHandler{s: s, sched: sched}
}

func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	var pc transfer.PostCreation
	if err := c.BodyParser(&pc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	post, err := h.s.CreatePost(c.Context(), &pc)
	if err != nil {
		return RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	posts, err := h.s.List(c.Context())
	if err != nil {
		return RespondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(posts)
}

func (h *PostHandler) GetPost(c *fiber.Ctx) error {
	post, err := h.s.PostInfo(c.Context(), c.Params("id"))
	if err != nil {
		return RespondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) UpdatePost(c *fiber.Ctx) error {
	var upd transfer.PostUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	post, err := h.s.UpdatePost(c.Context(), c.Params("id"), &upd)
	if err != nil {
		return RespondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

// DeletePost goes through the scheduler so the post's schedule is removed
// with it.
func (h *PostHandler) DeletePost(c *fiber.Ctx) error {
	if err := h.sched.DeletePost(c.Context(), c.Params("id")); err != nil {
		return RespondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"id": c.Params("id"),
	})
}

func (h *PostHandler) PublishPost(c *fiber.Ctx) error {
	post, err := h.sched.PublishNow(c.Context(), c.Params("id"))
	if err != nil {
		return RespondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(post)
}
