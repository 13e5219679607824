package unit_test

import (
	"testing"

	"stockadmin/internal/domain"
	"stockadmin/internal/middleware"

	"github.com/stretchr/testify/assert"
)

func TestRoleChecker(t *testing.T) {
	checker := middleware.RoleChecker{}

	admin := &domain.User{Role: string(domain.RoleAdmin)}
	manager := &domain.User{Role: string(domain.RoleManager)}
	viewer := &domain.User{Role: string(domain.RoleUser)}

	t.Run("Admin Holds Everything", func(t *testing.T) {
		assert.True(t, checker.Can(admin, middleware.CapSendNotification))
		assert.True(t, checker.Can(admin, middleware.CapSendUserNotification))
		assert.True(t, checker.Can(admin, middleware.CapHandleUsersRoles))
		assert.True(t, checker.Can(admin, middleware.CapDeleteWarehouse))
	})

	t.Run("Manager Cannot Send Notifications", func(t *testing.T) {
		assert.True(t, checker.Can(manager, middleware.CapCreateWarehouse))
		assert.True(t, checker.Can(manager, middleware.CapUpdateStock))
		assert.False(t, checker.Can(manager, middleware.CapSendNotification))
		assert.False(t, checker.Can(manager, middleware.CapSendUserNotification))
		assert.False(t, checker.Can(manager, middleware.CapDeleteProject))
		assert.False(t, checker.Can(manager, middleware.CapHandleUsersRoles))
	})

	t.Run("User Is Read Only", func(t *testing.T) {
		assert.True(t, checker.Can(viewer, middleware.CapReadProject))
		assert.True(t, checker.Can(viewer, middleware.CapReadWarehouse))
		assert.False(t, checker.Can(viewer, middleware.CapCreateProject))
		assert.False(t, checker.Can(viewer, middleware.CapSendNotification))
	})

	t.Run("Nil And Unknown Roles Are Denied", func(t *testing.T) {
		assert.False(t, checker.Can(nil, middleware.CapReadProject))
		assert.False(t, checker.Can(&domain.User{Role: "superuser"}, middleware.CapReadProject))
	})
}
