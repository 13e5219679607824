package domain

import (
	"time"

	"github.com/google/uuid"
)

type BannerType string

const (
	BannerDefault BannerType = "default"
	BannerMobile  BannerType = "mobile"
	BannerTablet  BannerType = "tablet"
	BannerDesktop BannerType = "desktop"
	BannerAll     BannerType = "all"
)

func (t BannerType) IsValid() bool {
	switch t {
	case BannerDefault, BannerMobile, BannerTablet, BannerDesktop, BannerAll:
		return true
	default:
		return false
	}
}

// Banner is an uploaded image. Banners uploaded in one batch form a group:
// the first file becomes the main banner, the rest reference it via ParentID.
type Banner struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty" db:"parent_id"`
	Type        BannerType `json:"type" db:"type"`
	StoragePath string     `json:"-" db:"storage_path"`
	URL         string     `json:"image" db:"-"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

type BannerCategoryType string

const (
	BannerCategoryCatalog BannerCategoryType = "catalog"
	BannerCategoryPromo   BannerCategoryType = "promo"
)

func (t BannerCategoryType) IsValid() bool {
	switch t {
	case BannerCategoryCatalog, BannerCategoryPromo:
		return true
	default:
		return false
	}
}

// BannerCategory pins a banner to a catalog or promo slot within a context.
type BannerCategory struct {
	ID         uuid.UUID          `json:"id" db:"id"`
	Name       string             `json:"name" db:"name"`
	ContextID  uuid.UUID          `json:"context_id" db:"context_id"`
	BannerID   uuid.UUID          `json:"banner_id" db:"banner_id"`
	Type       BannerCategoryType `json:"type" db:"type"`
	CategoryID int64              `json:"category_id" db:"category_id"`
	Priority   int                `json:"priority" db:"priority"`
	CreatedAt  time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" db:"updated_at"`
}

type CreateBannerCategoryInput struct {
	Name       string             `json:"name" validate:"required"`
	ContextID  uuid.UUID          `json:"context_id" validate:"required"`
	BannerID   uuid.UUID          `json:"banner_id" validate:"required"`
	Type       BannerCategoryType `json:"type" validate:"required,oneof=catalog promo"`
	CategoryID int64              `json:"category_id" validate:"required"`
	Priority   int                `json:"priority"`
}

type UpdateBannerCategoryInput struct {
	Name       *string             `json:"name,omitempty"`
	BannerID   *uuid.UUID          `json:"banner_id,omitempty"`
	Type       *BannerCategoryType `json:"type,omitempty"`
	CategoryID *int64              `json:"category_id,omitempty"`
	Priority   *int                `json:"priority,omitempty"`
}
