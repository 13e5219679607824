package unit_test

import (
	"context"
	"testing"

	"stockadmin/internal/domain"
	"stockadmin/internal/service/contexts"
	"stockadmin/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestContextService_Create(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		contextRepo := new(mocks.ContextRepository)
		projectRepo := new(mocks.ProjectRepository)
		svc := contexts.NewService(contextRepo, projectRepo)

		projectRepo.On("GetByID", ctx, projectID).Return(&domain.Project{ID: projectID}, nil).Once()
		contextRepo.On("Create", ctx, mock.MatchedBy(func(c *domain.Context) bool {
			return c.ProjectID == projectID && c.Key == "store-eu" && c.Status
		})).Return(nil).Once()

		created, err := svc.Create(ctx, domain.CreateContextInput{
			ProjectID: projectID,
			Name:      "EU Store",
			Key:       "store-eu",
			Status:    true,
		})

		assert.NoError(t, err)
		assert.NotNil(t, created)
		contextRepo.AssertExpectations(t)
	})

	t.Run("Missing Project", func(t *testing.T) {
		contextRepo := new(mocks.ContextRepository)
		projectRepo := new(mocks.ProjectRepository)
		svc := contexts.NewService(contextRepo, projectRepo)

		projectRepo.On("GetByID", ctx, projectID).Return(nil, nil).Once()

		_, err := svc.Create(ctx, domain.CreateContextInput{
			ProjectID: projectID,
			Name:      "Orphan",
			Key:       "orphan",
		})

		assert.ErrorIs(t, err, contexts.ErrProjectNotFound)
		contextRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestContextService_Update(t *testing.T) {
	ctx := context.Background()
	contextID := uuid.New()

	t.Run("Partial Patch", func(t *testing.T) {
		contextRepo := new(mocks.ContextRepository)
		svc := contexts.NewService(contextRepo, new(mocks.ProjectRepository))

		existing := &domain.Context{
			ID:       contextID,
			Name:     "Old name",
			Key:      "keep-key",
			Status:   true,
			Priority: 5,
		}

		contextRepo.On("GetByID", ctx, contextID).Return(existing, nil).Once()
		contextRepo.On("Update", ctx, mock.MatchedBy(func(c *domain.Context) bool {
			return c.Name == "New name" && c.Key == "keep-key" && c.Priority == 5
		})).Return(nil).Once()

		newName := "New name"
		updated, err := svc.Update(ctx, contextID, domain.UpdateContextInput{Name: &newName})

		assert.NoError(t, err)
		assert.Equal(t, "New name", updated.Name)
		contextRepo.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		contextRepo := new(mocks.ContextRepository)
		svc := contexts.NewService(contextRepo, new(mocks.ProjectRepository))

		contextRepo.On("GetByID", ctx, contextID).Return(nil, nil).Once()

		_, err := svc.Update(ctx, contextID, domain.UpdateContextInput{})
		assert.ErrorIs(t, err, contexts.ErrNotFound)
	})
}
