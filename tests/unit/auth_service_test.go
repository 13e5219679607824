package unit_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"stockadmin/internal/config"
	"stockadmin/internal/domain"
	"stockadmin/internal/middleware"
	"stockadmin/internal/service/auth"
	"stockadmin/tests/mocks"
)

func newAuthService(userRepo *mocks.UserRepository, sessionRepo *mocks.SessionRepository) auth.Service {
	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
	}
	return auth.NewService(userRepo, sessionRepo, cfg)
}

func TestAuthService_Register(t *testing.T) {
	t.Run("New Accounts Always Get The User Role", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := newAuthService(userRepo, sessionRepo)

		userRepo.On("ExistsByEmail", mock.Anything, "newcomer@example.com").Return(false, nil)
		userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
		sessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*repository.Session")).Return(nil)

		user, tokens, err := svc.Register(context.Background(), domain.CreateUserInput{
			Email:    "newcomer@example.com",
			Password: "valid-password",
			FullName: "New Comer",
		})

		assert.NoError(t, err)
		assert.NotNil(t, tokens)
		assert.Equal(t, string(domain.RoleUser), user.Role)

		checker := middleware.RoleChecker{}
		assert.False(t, checker.Can(user, middleware.CapSendNotification))
		assert.False(t, checker.Can(user, middleware.CapSendUserNotification))
		assert.False(t, checker.Can(user, middleware.CapHandleUsersRoles))
	})

	t.Run("Role Field In Request Body Is Ignored", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := newAuthService(userRepo, sessionRepo)

		// A request body smuggling a role must not influence the account.
		var input domain.CreateUserInput
		body := []byte(`{"email":"sneaky@example.com","password":"valid-password","full_name":"Sneaky","role":"admin"}`)
		assert.NoError(t, json.Unmarshal(body, &input))

		userRepo.On("ExistsByEmail", mock.Anything, "sneaky@example.com").Return(false, nil)
		userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Role == string(domain.RoleUser)
		})).Return(nil)
		sessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*repository.Session")).Return(nil)

		user, _, err := svc.Register(context.Background(), input)

		assert.NoError(t, err)
		assert.Equal(t, string(domain.RoleUser), user.Role)

		checker := middleware.RoleChecker{}
		assert.False(t, checker.Can(user, middleware.CapSendNotification))
		userRepo.AssertExpectations(t)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := newAuthService(userRepo, sessionRepo)

		userRepo.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

		_, _, err := svc.Register(context.Background(), domain.CreateUserInput{
			Email:    "taken@example.com",
			Password: "valid-password",
			FullName: "Late Arrival",
		})

		assert.ErrorIs(t, err, auth.ErrEmailExists)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
