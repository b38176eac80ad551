package repository

import (
	"context"

	"gorm.io/gorm"

	"biblio/internal/model"
)

// CategoryRepository defines category persistence operations.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	FindByName(ctx context.Context, name string) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// Create inserts a category.
func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	row := toCategoryRow(category)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	category.ID = row.ID
	return nil
}

// FindByName returns the first category with the given name. Names are not
// unique, so this is only a lookup aid for seeding.
func (r *categoryRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	var row categoryRow
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&row).Error; err != nil {
		return nil, err
	}
	category := row.toModel()
	return &category, nil
}

// List returns every category.
func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	var rows []categoryRow
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	categories := make([]model.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, row.toModel())
	}
	return categories, nil
}
