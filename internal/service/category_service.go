package service

import (
	"context"
	"time"

	"biblio/internal/model"
	"biblio/internal/repository"
)

// CategoryService handles category operations.
type CategoryService interface {
	CreateCategory(ctx context.Context, name string, description *string) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
}

type categoryService struct {
	repo repository.CategoryRepository
	now  func() time.Time
}

// NewCategoryService creates a new category service.
func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo, now: time.Now}
}

// CreateCategory inserts a category; description may be nil.
func (s *categoryService) CreateCategory(ctx context.Context, name string, description *string) (*model.Category, error) {
	category := &model.Category{
		Name:        name,
		Description: description,
		CreatedAt:   timestamp(s.now),
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories returns all categories.
func (s *categoryService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}
