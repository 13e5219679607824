package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"stockadmin/internal/domain"
	"stockadmin/internal/middleware"
	"stockadmin/internal/service/notification"
)

type NotificationHandler struct {
	notifService notification.Service
}

func NewNotificationHandler(notifService notification.Service) *NotificationHandler {
	return &NotificationHandler{notifService: notifService}
}

// List returns the newest visible notifications for the current user,
// system-wide records included, capped at a fixed window.
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	viewerID := middleware.GetCurrentUserID(c)

	notifications, err := h.notifService.List(c.Context(), viewerID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"notifications": notifications,
	})
}

func (h *NotificationHandler) GetUnreadCount(c *fiber.Ctx) error {
	viewerID := middleware.GetCurrentUserID(c)

	count, err := h.notifService.CountUnread(c.Context(), viewerID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"count": count,
	})
}

// Send emits a broadcast notification to every connected client. The
// response reports acceptance of the emission, not delivery.
func (h *NotificationHandler) Send(c *fiber.Ctx) error {
	var input domain.SendNotificationInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Title == "" || input.Message == "" {
		return middleware.ValidationFailed("Title and message are required")
	}

	if err := h.notifService.EmitBroadcast(c.Context(), input); err != nil {
		if errors.Is(err, notification.ErrInvalidSeverity) {
			return middleware.ValidationFailed("Invalid notification type")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Notification sent successfully",
	})
}

// SendToUser emits a directed notification to a single user's private
// channel. The target must exist; delivery itself is best effort.
func (h *NotificationHandler) SendToUser(c *fiber.Ctx) error {
	var input domain.SendUserNotificationInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Title == "" || input.Message == "" {
		return middleware.ValidationFailed("Title and message are required")
	}

	if err := h.notifService.EmitToUser(c.Context(), input); err != nil {
		if errors.Is(err, notification.ErrInvalidSeverity) {
			return middleware.ValidationFailed("Invalid notification type")
		}
		if errors.Is(err, notification.ErrUserNotFound) {
			return middleware.NotFound("User not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Notification sent successfully",
	})
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	viewerID := middleware.GetCurrentUserID(c)

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.BadRequest("Invalid notification ID")
	}

	if err := h.notifService.MarkRead(c.Context(), viewerID, id); err != nil {
		if errors.Is(err, notification.ErrNotFound) {
			return middleware.NotFound("Notification not found")
		}
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	viewerID := middleware.GetCurrentUserID(c)

	updated, err := h.notifService.MarkAllRead(c.Context(), viewerID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"updated": updated,
	})
}

func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	viewerID := middleware.GetCurrentUserID(c)

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.BadRequest("Invalid notification ID")
	}

	if err := h.notifService.Delete(c.Context(), viewerID, id); err != nil {
		if errors.Is(err, notification.ErrNotFound) {
			return middleware.NotFound("Notification not found")
		}
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *NotificationHandler) ClearAll(c *fiber.Ctx) error {
	viewerID := middleware.GetCurrentUserID(c)

	deleted, err := h.notifService.ClearAll(c.Context(), viewerID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"deleted": deleted,
	})
}
