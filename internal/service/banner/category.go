package banner

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"stockadmin/internal/domain"
	"stockadmin/internal/repository"
)

var (
	ErrCategoryNotFound = errors.New("banner category not found")
	ErrBannerNotFound   = errors.New("banner not found")
	ErrContextNotFound  = errors.New("context not found")
)

type CategoryService interface {
	Create(ctx context.Context, input domain.CreateBannerCategoryInput) (*domain.BannerCategory, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BannerCategory, error)
	List(ctx context.Context, contextID *uuid.UUID) ([]domain.BannerCategory, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateBannerCategoryInput) (*domain.BannerCategory, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	categoryRepo repository.BannerCategoryRepository
	bannerRepo   repository.BannerRepository
	contextRepo  repository.ContextRepository
}

func NewCategoryService(
	categoryRepo repository.BannerCategoryRepository,
	bannerRepo repository.BannerRepository,
	contextRepo repository.ContextRepository,
) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		bannerRepo:   bannerRepo,
		contextRepo:  contextRepo,
	}
}

func (s *categoryService) Create(ctx context.Context, input domain.CreateBannerCategoryInput) (*domain.BannerCategory, error) {
	if !input.Type.IsValid() {
		return nil, ErrInvalidType
	}

	parent, err := s.contextRepo.GetByID(ctx, input.ContextID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, ErrContextNotFound
	}

	banner, err := s.bannerRepo.GetByID(ctx, input.BannerID)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, ErrBannerNotFound
	}

	category := &domain.BannerCategory{
		ID:         uuid.New(),
		Name:       input.Name,
		ContextID:  input.ContextID,
		BannerID:   input.BannerID,
		Type:       input.Type,
		CategoryID: input.CategoryID,
		Priority:   input.Priority,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetByID(ctx context.Context, id uuid.UUID) (*domain.BannerCategory, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (s *categoryService) List(ctx context.Context, contextID *uuid.UUID) ([]domain.BannerCategory, error) {
	return s.categoryRepo.List(ctx, contextID)
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, input domain.UpdateBannerCategoryInput) (*domain.BannerCategory, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.BannerID != nil {
		banner, err := s.bannerRepo.GetByID(ctx, *input.BannerID)
		if err != nil {
			return nil, err
		}
		if banner == nil {
			return nil, ErrBannerNotFound
		}
		category.BannerID = *input.BannerID
	}
	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, ErrInvalidType
		}
		category.Type = *input.Type
	}
	if input.CategoryID != nil {
		category.CategoryID = *input.CategoryID
	}
	if input.Priority != nil {
		category.Priority = *input.Priority
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.categoryRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCategoryNotFound
	}
	return nil
}
