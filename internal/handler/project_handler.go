package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"stockadmin/internal/domain"
	"stockadmin/internal/middleware"
	"stockadmin/internal/service/project"
)

type ProjectHandler struct {
	projectService project.Service
}

func NewProjectHandler(projectService project.Service) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateProjectInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	p, err := h.projectService.Create(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *ProjectHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	result, err := h.projectService.List(c.Context(), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid project ID")
	}

	p, err := h.projectService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return middleware.NotFound("Project not found")
		}
		return err
	}

	return c.JSON(p)
}

func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid project ID")
	}

	var input domain.UpdateProjectInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	p, err := h.projectService.Update(c.Context(), id, input)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return middleware.NotFound("Project not found")
		}
		return err
	}

	return c.JSON(p)
}

func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid project ID")
	}

	if err := h.projectService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, project.ErrNotFound) {
			return middleware.NotFound("Project not found")
		}
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
