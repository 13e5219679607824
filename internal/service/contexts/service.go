package contexts

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"stockadmin/internal/domain"
	"stockadmin/internal/repository"
)

var (
	ErrNotFound        = errors.New("context not found")
	ErrProjectNotFound = errors.New("project not found")
)

type Service interface {
	Create(ctx context.Context, input domain.CreateContextInput) (*domain.Context, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Context, error)
	List(ctx context.Context, projectID *uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Context], error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateContextInput) (*domain.Context, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	contextRepo repository.ContextRepository
	projectRepo repository.ProjectRepository
}

func NewService(contextRepo repository.ContextRepository, projectRepo repository.ProjectRepository) Service {
	return &service{
		contextRepo: contextRepo,
		projectRepo: projectRepo,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreateContextInput) (*domain.Context, error) {
	project, err := s.projectRepo.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	c := &domain.Context{
		ID:          uuid.New(),
		ProjectID:   input.ProjectID,
		Name:        input.Name,
		Key:         input.Key,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
	}

	if err := s.contextRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Context, error) {
	c, err := s.contextRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

func (s *service) List(ctx context.Context, projectID *uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Context], error) {
	items, total, err := s.contextRepo.List(ctx, projectID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Context]{}, err
	}
	return domain.NewPaginatedResponse(items, params.Page, params.PageSize, total), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdateContextInput) (*domain.Context, error) {
	c, err := s.contextRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}

	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.Key != nil {
		c.Key = *input.Key
	}
	if input.Description != nil {
		c.Description = input.Description
	}
	if input.Status != nil {
		c.Status = *input.Status
	}
	if input.Priority != nil {
		c.Priority = *input.Priority
	}

	if err := s.contextRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.contextRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
