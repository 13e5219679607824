package project

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"stockadmin/internal/domain"
	"stockadmin/internal/repository"
)

var ErrNotFound = errors.New("project not found")

type Service interface {
	Create(ctx context.Context, input domain.CreateProjectInput) (*domain.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Project], error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	projectRepo repository.ProjectRepository
}

func NewService(projectRepo repository.ProjectRepository) Service {
	return &service{projectRepo: projectRepo}
}

func (s *service) Create(ctx context.Context, input domain.CreateProjectInput) (*domain.Project, error) {
	status := input.Status
	if status == "" {
		status = "active"
	}

	project := &domain.Project{
		ID:          uuid.New(),
		Name:        input.Name,
		Key:         input.Key,
		Description: input.Description,
		Status:      status,
		Priority:    input.Priority,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNotFound
	}
	return project, nil
}

func (s *service) List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Project], error) {
	projects, total, err := s.projectRepo.List(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Project]{}, err
	}
	return domain.NewPaginatedResponse(projects, params.Page, params.PageSize, total), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdateProjectInput) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNotFound
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Key != nil {
		project.Key = *input.Key
	}
	if input.Description != nil {
		project.Description = input.Description
	}
	if input.Status != nil {
		project.Status = *input.Status
	}
	if input.Priority != nil {
		project.Priority = *input.Priority
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.projectRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
