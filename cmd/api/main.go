package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"stockadmin/internal/config"
	"stockadmin/internal/handler"
	"stockadmin/internal/middleware"
	"stockadmin/internal/realtime"
	"stockadmin/internal/repository"
	"stockadmin/internal/service"
	"stockadmin/internal/service/auth"
	"stockadmin/migrations"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(slogger)

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migrations.Up(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (banner upload will not work)", err)
	}

	broker := realtime.NewRedisBroker(redisClient)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redisClient, minioClient, broker, cfg, slogger)
	handlers := handler.NewHandlers(services, broker, slogger)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health" || c.Path() == "/metrics"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService auth.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	metricsHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	app.Get("/metrics", func(c *fiber.Ctx) error {
		metricsHandler(c.Context())
		return nil
	})

	v1 := app.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)

	checker := middleware.RoleChecker{}
	protected := v1.Group("", middleware.AuthRequired(authService))

	protected.Post("/auth/logout", h.Auth.Logout)
	protected.Get("/auth/me", h.Auth.Me)

	users := protected.Group("/users")
	users.Get("/", middleware.RequirePermission(checker, middleware.CapReadUser), h.User.List)
	users.Get("/:id", middleware.RequirePermission(checker, middleware.CapReadUser), h.User.GetByID)
	users.Put("/:id", middleware.RequirePermission(checker, middleware.CapUpdateUser), h.User.Update)
	users.Delete("/:id", middleware.RequirePermission(checker, middleware.CapDeleteUser), h.User.Delete)
	users.Post("/:id/role", middleware.RequirePermission(checker, middleware.CapHandleUsersRoles), h.User.AssignRole)

	projects := protected.Group("/projects")
	projects.Post("/", middleware.RequirePermission(checker, middleware.CapCreateProject), h.Project.Create)
	projects.Get("/", middleware.RequirePermission(checker, middleware.CapReadProject), h.Project.List)
	projects.Get("/:id", middleware.RequirePermission(checker, middleware.CapReadProject), h.Project.GetByID)
	projects.Put("/:id", middleware.RequirePermission(checker, middleware.CapUpdateProject), h.Project.Update)
	projects.Delete("/:id", middleware.RequirePermission(checker, middleware.CapDeleteProject), h.Project.Delete)

	contexts := protected.Group("/contexts")
	contexts.Post("/", middleware.RequirePermission(checker, middleware.CapCreateContext), h.Context.Create)
	contexts.Get("/", middleware.RequirePermission(checker, middleware.CapReadContext), h.Context.List)
	contexts.Get("/:id", middleware.RequirePermission(checker, middleware.CapReadContext), h.Context.GetByID)
	contexts.Put("/:id", middleware.RequirePermission(checker, middleware.CapUpdateContext), h.Context.Update)
	contexts.Delete("/:id", middleware.RequirePermission(checker, middleware.CapDeleteContext), h.Context.Delete)

	warehouses := protected.Group("/warehouses")
	warehouses.Post("/", middleware.RequirePermission(checker, middleware.CapCreateWarehouse), h.Warehouse.Create)
	warehouses.Get("/", middleware.RequirePermission(checker, middleware.CapReadWarehouse), h.Warehouse.List)
	warehouses.Get("/availability", middleware.RequirePermission(checker, middleware.CapReadStock), h.Warehouse.Availability)
	warehouses.Get("/:id", middleware.RequirePermission(checker, middleware.CapReadWarehouse), h.Warehouse.GetByID)
	warehouses.Put("/:id", middleware.RequirePermission(checker, middleware.CapUpdateWarehouse), h.Warehouse.Update)
	warehouses.Delete("/:id", middleware.RequirePermission(checker, middleware.CapDeleteWarehouse), h.Warehouse.Delete)

	stocks := protected.Group("/warehouse-stocks")
	stocks.Post("/", middleware.RequirePermission(checker, middleware.CapCreateStock), h.Warehouse.CreateStock)
	stocks.Put("/:id", middleware.RequirePermission(checker, middleware.CapUpdateStock), h.Warehouse.UpdateStock)
	stocks.Delete("/:id", middleware.RequirePermission(checker, middleware.CapDeleteStock), h.Warehouse.DeleteStock)

	banners := protected.Group("/banners")
	banners.Post("/", middleware.RequirePermission(checker, middleware.CapCreateBanner), h.Banner.Upload)
	banners.Get("/", middleware.RequirePermission(checker, middleware.CapReadBanner), h.Banner.List)
	banners.Get("/:id", middleware.RequirePermission(checker, middleware.CapReadBanner), h.Banner.GetByID)
	banners.Delete("/:id", middleware.RequirePermission(checker, middleware.CapDeleteBanner), h.Banner.Delete)

	bannerCategories := protected.Group("/banner-categories")
	bannerCategories.Post("/", middleware.RequirePermission(checker, middleware.CapCreateBanner), h.Banner.CreateCategory)
	bannerCategories.Get("/", middleware.RequirePermission(checker, middleware.CapReadBanner), h.Banner.ListCategories)
	bannerCategories.Put("/:id", middleware.RequirePermission(checker, middleware.CapUpdateBanner), h.Banner.UpdateCategory)
	bannerCategories.Delete("/:id", middleware.RequirePermission(checker, middleware.CapDeleteBanner), h.Banner.DeleteCategory)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.GetUnreadCount)
	notifications.Get("/stream", h.Stream.Stream)
	notifications.Post("/send", middleware.RequirePermission(checker, middleware.CapSendNotification), h.Notification.Send)
	notifications.Post("/send-to-user", middleware.RequirePermission(checker, middleware.CapSendUserNotification), h.Notification.SendToUser)
	notifications.Put("/mark-all-read", h.Notification.MarkAllRead)
	notifications.Put("/:id/read", h.Notification.MarkRead)
	notifications.Delete("/clear-all", h.Notification.ClearAll)
	notifications.Delete("/:id", h.Notification.Delete)
}
