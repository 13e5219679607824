package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"stockadmin/internal/domain"
)

// Capability names checked on the HTTP surface. The backing store is an
// external concern; everything here goes through the Checker interface so
// the static role map can be swapped for a real ACL backend.
const (
	CapCreateProject = "create_project"
	CapReadProject   = "read_project"
	CapUpdateProject = "update_project"
	CapDeleteProject = "delete_project"

	CapCreateContext = "create_context"
	CapReadContext   = "read_context"
	CapUpdateContext = "update_context"
	CapDeleteContext = "delete_context"

	CapCreateWarehouse = "create_warehouse"
	CapReadWarehouse   = "read_warehouse"
	CapUpdateWarehouse = "update_warehouse"
	CapDeleteWarehouse = "delete_warehouse"

	CapCreateStock = "create_warehouse_stock"
	CapReadStock   = "read_warehouse_stock"
	CapUpdateStock = "update_warehouse_stock"
	CapDeleteStock = "delete_warehouse_stock"

	CapCreateBanner = "create_banner"
	CapReadBanner   = "read_banner"
	CapUpdateBanner = "update_banner"
	CapDeleteBanner = "delete_banner"

	CapReadUser   = "read_user"
	CapUpdateUser = "update_user"
	CapDeleteUser = "delete_user"

	CapSendNotification     = "send_notification"
	CapSendUserNotification = "send_user_notification"

	CapHandleUsersRoles = "handle_users_roles"
)

// Checker answers capability questions for an authenticated user.
type Checker interface {
	Can(user *domain.User, capability string) bool
}

// RoleChecker is the built-in Checker: a closed role to capability map.
// Admin holds every capability; manager covers day-to-day catalog work;
// user is read-only.
type RoleChecker struct{}

var managerCapabilities = map[string]bool{
	CapReadUser:        true,
	CapCreateProject:   true,
	CapReadProject:     true,
	CapUpdateProject:   true,
	CapCreateContext:   true,
	CapReadContext:     true,
	CapUpdateContext:   true,
	CapCreateWarehouse: true,
	CapReadWarehouse:   true,
	CapUpdateWarehouse: true,
	CapCreateStock:     true,
	CapReadStock:       true,
	CapUpdateStock:     true,
	CapCreateBanner:    true,
	CapReadBanner:      true,
	CapUpdateBanner:    true,
}

var userCapabilities = map[string]bool{
	CapReadProject:   true,
	CapReadContext:   true,
	CapReadWarehouse: true,
	CapReadStock:     true,
	CapReadBanner:    true,
}

func (RoleChecker) Can(user *domain.User, capability string) bool {
	if user == nil {
		return false
	}
	switch domain.UserRole(user.Role) {
	case domain.RoleAdmin:
		return true
	case domain.RoleManager:
		return managerCapabilities[capability]
	case domain.RoleUser:
		return userCapabilities[capability]
	default:
		return false
	}
}

// RequirePermission rejects with 403 when the current user lacks the
// capability; the response names the capability that was required.
func RequirePermission(checker Checker, capability string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return Unauthorized("User not found")
		}

		if !checker.Can(user, capability) {
			return Forbidden(fmt.Sprintf("Missing required capability: %s", capability))
		}

		return c.Next()
	}
}
