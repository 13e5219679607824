package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"stockadmin/internal/domain"
	"stockadmin/internal/realtime"
	"stockadmin/internal/service"
)

type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Project      *ProjectHandler
	Context      *ContextHandler
	Warehouse    *WarehouseHandler
	Banner       *BannerHandler
	Notification *NotificationHandler
	Stream       *StreamHandler
}

func NewHandlers(services *service.Services, broker *realtime.RedisBroker, logger *slog.Logger) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		User:         NewUserHandler(services.User),
		Project:      NewProjectHandler(services.Project),
		Context:      NewContextHandler(services.Context),
		Warehouse:    NewWarehouseHandler(services.Warehouse),
		Banner:       NewBannerHandler(services.Banner, services.BannerCategory),
		Notification: NewNotificationHandler(services.Notification),
		Stream:       NewStreamHandler(broker, logger),
	}
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()

	if page := c.QueryInt("page", 1); page > 0 {
		params.Page = page
	}
	if pageSize := c.QueryInt("page_size", 20); pageSize > 0 {
		params.PageSize = pageSize
	}

	params.Validate()
	return params
}
