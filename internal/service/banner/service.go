package banner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"stockadmin/internal/config"
	"stockadmin/internal/domain"
	"stockadmin/internal/repository"
)

var (
	ErrNotFound    = errors.New("banner not found")
	ErrInvalidType = errors.New("invalid banner type")
	ErrNoFiles     = errors.New("no banner files provided")
)

// UploadFile is one file in an upload batch.
type UploadFile struct {
	FileName string
	Size     int64
	MimeType string
	Reader   io.Reader
}

type Service interface {
	// UploadBatch stores every file and records the group: the first file
	// becomes the main banner, the rest are linked to it as children.
	UploadBatch(ctx context.Context, bannerType domain.BannerType, files []UploadFile) ([]domain.Banner, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Banner, error)
	List(ctx context.Context, bannerType *domain.BannerType) ([]domain.Banner, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	bannerRepo  repository.BannerRepository
	minioClient *minio.Client
	cfg         *config.Config
}

func NewService(bannerRepo repository.BannerRepository, minioClient *minio.Client, cfg *config.Config) Service {
	return &service{
		bannerRepo:  bannerRepo,
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (s *service) UploadBatch(ctx context.Context, bannerType domain.BannerType, files []UploadFile) ([]domain.Banner, error) {
	if !bannerType.IsValid() {
		return nil, ErrInvalidType
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	banners := make([]domain.Banner, 0, len(files))
	var mainID *uuid.UUID

	for i, file := range files {
		bannerID := uuid.New()
		storagePath := fmt.Sprintf("banners/%s/%s", time.Now().Format("2006/01"), bannerID.String())

		_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, file.Reader, file.Size, minio.PutObjectOptions{
			ContentType: file.MimeType,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to upload banner to MinIO: %w", err)
		}

		banner := &domain.Banner{
			ID:          bannerID,
			Type:        bannerType,
			StoragePath: storagePath,
		}
		if i > 0 {
			banner.ParentID = mainID
		}

		if err := s.bannerRepo.Create(ctx, banner); err != nil {
			_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, storagePath, minio.RemoveObjectOptions{})
			return nil, err
		}
		if i == 0 {
			mainID = &banner.ID
		}

		banner.URL = s.getPublicURL(storagePath)
		banners = append(banners, *banner)
	}

	return banners, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Banner, error) {
	banner, err := s.bannerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, ErrNotFound
	}
	banner.URL = s.getPublicURL(banner.StoragePath)
	return banner, nil
}

func (s *service) List(ctx context.Context, bannerType *domain.BannerType) ([]domain.Banner, error) {
	if bannerType != nil && !bannerType.IsValid() {
		return nil, ErrInvalidType
	}

	banners, err := s.bannerRepo.List(ctx, bannerType)
	if err != nil {
		return nil, err
	}
	for i := range banners {
		banners[i].URL = s.getPublicURL(banners[i].StoragePath)
	}
	return banners, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	banner, err := s.bannerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if banner == nil {
		return ErrNotFound
	}

	deleted, err := s.bannerRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	return s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, banner.StoragePath, minio.RemoveObjectOptions{})
}

func (s *service) getPublicURL(storagePath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, storagePath)
}
