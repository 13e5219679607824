package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User           UserRepository
	Session        SessionRepository
	Project        ProjectRepository
	Context        ContextRepository
	Warehouse      WarehouseRepository
	WarehouseStock WarehouseStockRepository
	Banner         BannerRepository
	BannerCategory BannerCategoryRepository
	Notification   NotificationRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:           NewUserRepository(db),
		Session:        NewSessionRepository(db),
		Project:        NewProjectRepository(db),
		Context:        NewContextRepository(db),
		Warehouse:      NewWarehouseRepository(db),
		WarehouseStock: NewWarehouseStockRepository(db),
		Banner:         NewBannerRepository(db),
		BannerCategory: NewBannerCategoryRepository(db),
		Notification:   NewNotificationRepository(db),
	}
}
