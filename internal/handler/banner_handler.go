package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"stockadmin/internal/domain"
	"stockadmin/internal/middleware"
	"stockadmin/internal/service/banner"
)

const maxBannerSize = 10 * 1024 * 1024

type BannerHandler struct {
	bannerService   banner.Service
	categoryService banner.CategoryService
}

func NewBannerHandler(bannerService banner.Service, categoryService banner.CategoryService) *BannerHandler {
	return &BannerHandler{
		bannerService:   bannerService,
		categoryService: categoryService,
	}
}

// Upload accepts one or more images under the "banners" multipart field.
// The first file becomes the main banner of the batch.
func (h *BannerHandler) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return middleware.BadRequest("Multipart form is required")
	}

	files := form.File["banners"]
	if len(files) == 0 {
		files = form.File["banners[]"]
	}
	if len(files) == 0 {
		return middleware.BadRequest("At least one banner file is required")
	}

	bannerType := domain.BannerType(c.FormValue("type", string(domain.BannerDefault)))
	if !bannerType.IsValid() {
		return middleware.ValidationFailed("Invalid banner type")
	}

	uploads := make([]banner.UploadFile, 0, len(files))
	for _, file := range files {
		if file.Size > maxBannerSize {
			return middleware.BadRequest("File size must be less than 10MB")
		}

		mimeType := file.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}

		reader, err := file.Open()
		if err != nil {
			return middleware.BadRequest("Failed to read file")
		}
		defer reader.Close()

		uploads = append(uploads, banner.UploadFile{
			FileName: file.Filename,
			Size:     file.Size,
			MimeType: mimeType,
			Reader:   reader,
		})
	}

	banners, err := h.bannerService.UploadBatch(c.Context(), bannerType, uploads)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"banners": banners,
	})
}

func (h *BannerHandler) List(c *fiber.Ctx) error {
	var bannerType *domain.BannerType
	if raw := c.Query("type"); raw != "" {
		t := domain.BannerType(raw)
		if !t.IsValid() {
			return middleware.ValidationFailed("Invalid banner type")
		}
		bannerType = &t
	}

	banners, err := h.bannerService.List(c.Context(), bannerType)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"banners": banners,
	})
}

func (h *BannerHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid banner ID")
	}

	b, err := h.bannerService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, banner.ErrNotFound) {
			return middleware.NotFound("Banner not found")
		}
		return err
	}

	return c.JSON(b)
}

func (h *BannerHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid banner ID")
	}

	if err := h.bannerService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, banner.ErrNotFound) {
			return middleware.NotFound("Banner not found")
		}
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *BannerHandler) CreateCategory(c *fiber.Ctx) error {
	var input domain.CreateBannerCategoryInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	category, err := h.categoryService.Create(c.Context(), input)
	if err != nil {
		if errors.Is(err, banner.ErrContextNotFound) {
			return middleware.ValidationFailed("Context does not exist")
		}
		if errors.Is(err, banner.ErrBannerNotFound) {
			return middleware.ValidationFailed("Banner does not exist")
		}
		if errors.Is(err, banner.ErrInvalidType) {
			return middleware.ValidationFailed("Invalid banner category type")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *BannerHandler) ListCategories(c *fiber.Ctx) error {
	var contextID *uuid.UUID
	if raw := c.Query("context_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return middleware.BadRequest("Invalid context ID")
		}
		contextID = &id
	}

	categories, err := h.categoryService.List(c.Context(), contextID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"categories": categories,
	})
}

func (h *BannerHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid banner category ID")
	}

	var input domain.UpdateBannerCategoryInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	category, err := h.categoryService.Update(c.Context(), id, input)
	if err != nil {
		if errors.Is(err, banner.ErrCategoryNotFound) {
			return middleware.NotFound("Banner category not found")
		}
		if errors.Is(err, banner.ErrBannerNotFound) {
			return middleware.ValidationFailed("Banner does not exist")
		}
		if errors.Is(err, banner.ErrInvalidType) {
			return middleware.ValidationFailed("Invalid banner category type")
		}
		return err
	}

	return c.JSON(category)
}

func (h *BannerHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid banner category ID")
	}

	if err := h.categoryService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, banner.ErrCategoryNotFound) {
			return middleware.NotFound("Banner category not found")
		}
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
