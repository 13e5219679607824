package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"stockadmin/internal/domain"
	"stockadmin/internal/middleware"
	"stockadmin/internal/service/contexts"
)

type ContextHandler struct {
	contextService contexts.Service
}

func NewContextHandler(contextService contexts.Service) *ContextHandler {
	return &ContextHandler{contextService: contextService}
}

func (h *ContextHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateContextInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	ctx, err := h.contextService.Create(c.Context(), input)
	if err != nil {
		if errors.Is(err, contexts.ErrProjectNotFound) {
			return middleware.ValidationFailed("Project does not exist")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(ctx)
}

func (h *ContextHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	var projectID *uuid.UUID
	if raw := c.Query("project_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return middleware.BadRequest("Invalid project ID")
		}
		projectID = &id
	}

	result, err := h.contextService.List(c.Context(), projectID, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *ContextHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid context ID")
	}

	ctx, err := h.contextService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, contexts.ErrNotFound) {
			return middleware.NotFound("Context not found")
		}
		return err
	}

	return c.JSON(ctx)
}

func (h *ContextHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid context ID")
	}

	var input domain.UpdateContextInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	ctx, err := h.contextService.Update(c.Context(), id, input)
	if err != nil {
		if errors.Is(err, contexts.ErrNotFound) {
			return middleware.NotFound("Context not found")
		}
		return err
	}

	return c.JSON(ctx)
}

func (h *ContextHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid context ID")
	}

	if err := h.contextService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, contexts.ErrNotFound) {
			return middleware.NotFound("Context not found")
		}
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
