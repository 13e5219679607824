package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"stockadmin/internal/domain"
	"stockadmin/internal/middleware"
	"stockadmin/internal/service/warehouse"
)

type WarehouseHandler struct {
	warehouseService warehouse.Service
}

func NewWarehouseHandler(warehouseService warehouse.Service) *WarehouseHandler {
	return &WarehouseHandler{warehouseService: warehouseService}
}

func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateWarehouseInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	w, err := h.warehouseService.Create(c.Context(), input)
	if err != nil {
		if errors.Is(err, warehouse.ErrContextNotFound) {
			return middleware.ValidationFailed("Context does not exist")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(w)
}

func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	var contextID *uuid.UUID
	if raw := c.Query("context_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return middleware.BadRequest("Invalid context ID")
		}
		contextID = &id
	}

	result, err := h.warehouseService.List(c.Context(), contextID, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *WarehouseHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid warehouse ID")
	}

	w, err := h.warehouseService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, warehouse.ErrNotFound) {
			return middleware.NotFound("Warehouse not found")
		}
		return err
	}

	return c.JSON(w)
}

func (h *WarehouseHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid warehouse ID")
	}

	var input domain.UpdateWarehouseInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	w, err := h.warehouseService.Update(c.Context(), id, input)
	if err != nil {
		if errors.Is(err, warehouse.ErrNotFound) {
			return middleware.NotFound("Warehouse not found")
		}
		return err
	}

	return c.JSON(w)
}

func (h *WarehouseHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid warehouse ID")
	}

	if err := h.warehouseService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, warehouse.ErrNotFound) {
			return middleware.NotFound("Warehouse not found")
		}
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *WarehouseHandler) CreateStock(c *fiber.Ctx) error {
	var input domain.CreateWarehouseStockInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	stock, err := h.warehouseService.CreateStock(c.Context(), input)
	if err != nil {
		if errors.Is(err, warehouse.ErrNotFound) {
			return middleware.ValidationFailed("Warehouse does not exist")
		}
		if errors.Is(err, warehouse.ErrQuantityBand) {
			return middleware.ValidationFailed(err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(stock)
}

func (h *WarehouseHandler) UpdateStock(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid stock ID")
	}

	var input domain.UpdateWarehouseStockInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	stock, err := h.warehouseService.UpdateStock(c.Context(), id, input)
	if err != nil {
		if errors.Is(err, warehouse.ErrStockNotFound) {
			return middleware.NotFound("Warehouse stock not found")
		}
		if errors.Is(err, warehouse.ErrQuantityBand) {
			return middleware.ValidationFailed(err.Error())
		}
		return err
	}

	return c.JSON(stock)
}

func (h *WarehouseHandler) DeleteStock(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid stock ID")
	}

	if err := h.warehouseService.DeleteStock(c.Context(), id); err != nil {
		if errors.Is(err, warehouse.ErrStockNotFound) {
			return middleware.NotFound("Warehouse stock not found")
		}
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Availability serves computed quantities for a context and category. The
// strategy query parameter selects the computation; values outside the
// registered set are rejected, not defaulted.
func (h *WarehouseHandler) Availability(c *fiber.Ctx) error {
	contextID, err := uuid.Parse(c.Query("context_id"))
	if err != nil {
		return middleware.BadRequest("Invalid context ID")
	}

	categoryID := int64(c.QueryInt("category_id", 0))
	if categoryID <= 0 {
		return middleware.BadRequest("Invalid category ID")
	}

	query := domain.AvailabilityQuery{
		ContextID:  contextID,
		CategoryID: categoryID,
		Strategy:   domain.StockStrategy(c.Query("strategy", string(domain.StrategyBase))),
	}

	items, err := h.warehouseService.Availability(c.Context(), query)
	if err != nil {
		if errors.Is(err, warehouse.ErrUnknownStrategy) {
			return middleware.ValidationFailed("Unknown stock strategy")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"items": items,
	})
}
