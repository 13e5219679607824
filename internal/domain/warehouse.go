package domain

import (
	"time"

	"github.com/google/uuid"
)

type Warehouse struct {
	ID          uuid.UUID `json:"id" db:"id"`
	ContextID   uuid.UUID `json:"context_id" db:"context_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	Content     *string   `json:"content,omitempty" db:"content"`
	Status      string    `json:"status" db:"status"`
	Priority    int       `json:"priority" db:"priority"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type CreateWarehouseInput struct {
	ContextID   uuid.UUID `json:"context_id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Description *string   `json:"description,omitempty"`
	Content     *string   `json:"content,omitempty"`
	Status      string    `json:"status"`
	Priority    int       `json:"priority"`
}

type UpdateWarehouseInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Content     *string `json:"content,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *int    `json:"priority,omitempty"`
}

// WarehouseStock holds the configured quantity band for a category at a
// warehouse. Reported availability is drawn from [MinQuantity, MaxQuantity].
type WarehouseStock struct {
	ID          uuid.UUID `json:"id" db:"id"`
	WarehouseID uuid.UUID `json:"warehouse_id" db:"warehouse_id"`
	CategoryID  int64     `json:"category_id" db:"category_id"`
	MinQuantity int       `json:"min_quantity" db:"min_quantity"`
	MaxQuantity int       `json:"max_quantity" db:"max_quantity"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type CreateWarehouseStockInput struct {
	WarehouseID uuid.UUID `json:"warehouse_id" validate:"required"`
	CategoryID  int64     `json:"category_id" validate:"required"`
	MinQuantity int       `json:"min_quantity" validate:"gte=0"`
	MaxQuantity int       `json:"max_quantity" validate:"gte=0"`
}

type UpdateWarehouseStockInput struct {
	MinQuantity *int `json:"min_quantity,omitempty" validate:"omitempty,gte=0"`
	MaxQuantity *int `json:"max_quantity,omitempty" validate:"omitempty,gte=0"`
}

// StockStrategy selects how availability is computed for a category query.
// The set is closed; unknown values are rejected at the boundary.
type StockStrategy string

const (
	StrategyBase StockStrategy = "base"
)

func (s StockStrategy) IsValid() bool {
	switch s {
	case StrategyBase:
		return true
	default:
		return false
	}
}

// AvailabilityItem is one warehouse row in an availability response.
type AvailabilityItem struct {
	WarehouseID   uuid.UUID `json:"warehouse_id"`
	WarehouseName string    `json:"warehouse_name"`
	Quantity      int       `json:"quantity"`
	Priority      int       `json:"priority"`
}

type AvailabilityQuery struct {
	ContextID  uuid.UUID
	CategoryID int64
	Strategy   StockStrategy
}
