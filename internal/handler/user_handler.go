package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"stockadmin/internal/domain"
	"stockadmin/internal/middleware"
	"stockadmin/internal/service/user"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	result, err := h.userService.List(c.Context(), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid user ID")
	}

	u, err := h.userService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NotFound("User not found")
		}
		return err
	}

	return c.JSON(u)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid user ID")
	}

	var input domain.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	u, err := h.userService.Update(c.Context(), id, input)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NotFound("User not found")
		}
		return err
	}

	return c.JSON(u)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid user ID")
	}

	if err := h.userService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NotFound("User not found")
		}
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *UserHandler) AssignRole(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid user ID")
	}

	var input struct {
		Role domain.UserRole `json:"role"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if !input.Role.IsValid() {
		return middleware.ValidationFailed("Invalid role")
	}

	if err := h.userService.AssignRole(c.Context(), id, input.Role); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NotFound("User not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Role assigned successfully",
	})
}
