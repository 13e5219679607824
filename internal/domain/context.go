package domain

import (
	"time"

	"github.com/google/uuid"
)

// Context is a named environment inside a project (e.g. a storefront or
// region) that warehouses and banner categories belong to.
type Context struct {
	ID          uuid.UUID `json:"id" db:"id"`
	ProjectID   uuid.UUID `json:"project_id" db:"project_id"`
	Name        string    `json:"name" db:"name"`
	Key         string    `json:"key" db:"key"`
	Description *string   `json:"description,omitempty" db:"description"`
	Status      bool      `json:"status" db:"status"`
	Priority    int       `json:"priority" db:"priority"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type CreateContextInput struct {
	ProjectID   uuid.UUID `json:"project_id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Key         string    `json:"key" validate:"required"`
	Description *string   `json:"description,omitempty"`
	Status      bool      `json:"status"`
	Priority    int       `json:"priority"`
}

type UpdateContextInput struct {
	Name        *string `json:"name,omitempty"`
	Key         *string `json:"key,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *bool   `json:"status,omitempty"`
	Priority    *int    `json:"priority,omitempty"`
}
