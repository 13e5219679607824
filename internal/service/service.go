package service

import (
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"stockadmin/internal/config"
	"stockadmin/internal/realtime"
	"stockadmin/internal/repository"
	"stockadmin/internal/service/auth"
	"stockadmin/internal/service/banner"
	"stockadmin/internal/service/contexts"
	"stockadmin/internal/service/email"
	"stockadmin/internal/service/notification"
	"stockadmin/internal/service/project"
	"stockadmin/internal/service/user"
	"stockadmin/internal/service/warehouse"
)

// Services aggregates every service for handler wiring.
type Services struct {
	Auth           auth.Service
	User           user.Service
	Project        project.Service
	Context        contexts.Service
	Warehouse      warehouse.Service
	Banner         banner.Service
	BannerCategory banner.CategoryService
	Notification   notification.Service
}

func NewServices(
	repos *repository.Repositories,
	redisClient *redis.Client,
	minioClient *minio.Client,
	broker *realtime.RedisBroker,
	cfg *config.Config,
	logger *slog.Logger,
) *Services {
	var emailSvc email.Service
	if cfg.ResendAPIKey != "" {
		emailSvc = email.NewService(cfg)
	}

	router := realtime.NewRouter(broker, logger)

	return &Services{
		Auth:           auth.NewService(repos.User, repos.Session, cfg),
		User:           user.NewService(repos.User),
		Project:        project.NewService(repos.Project),
		Context:        contexts.NewService(repos.Context, repos.Project),
		Warehouse:      warehouse.NewService(repos.Warehouse, repos.WarehouseStock, repos.Context, redisClient, cfg.AvailabilityCacheTTL),
		Banner:         banner.NewService(repos.Banner, minioClient, cfg),
		BannerCategory: banner.NewCategoryService(repos.BannerCategory, repos.Banner, repos.Context),
		Notification:   notification.NewService(repos.Notification, repos.User, router, emailSvc, logger),
	}
}
