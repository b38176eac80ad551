package repository

import (
	"context"

	"gorm.io/gorm"

	"biblio/internal/model"
)

// BookRepository defines book persistence operations.
type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	FindByID(ctx context.Context, id uint) (*model.Book, error)
	FindByISBN(ctx context.Context, isbn string) (*model.Book, error)
	List(ctx context.Context) ([]model.Book, error)
	Update(ctx context.Context, book *model.Book) error
	Delete(ctx context.Context, id uint) error
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo BookRepository) error) error
}

type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository creates a new book repository.
func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

// Create inserts a new book and copies the assigned ID back.
func (r *bookRepository) Create(ctx context.Context, book *model.Book) error {
	row := toBookRow(book)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	book.ID = row.ID
	return nil
}

// FindByID finds a book by ID.
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*model.Book, error) {
	var row bookRow
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	book := row.toModel()
	return &book, nil
}

// FindByISBN finds a book by its ISBN.
func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	var row bookRow
	if err := r.db.WithContext(ctx).Where("isbn = ?", isbn).First(&row).Error; err != nil {
		return nil, err
	}
	book := row.toModel()
	return &book, nil
}

// List returns every book.
func (r *bookRepository) List(ctx context.Context) ([]model.Book, error) {
	var rows []bookRow
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	books := make([]model.Book, 0, len(rows))
	for _, row := range rows {
		books = append(books, row.toModel())
	}
	return books, nil
}

// Update writes title and author. ISBN, availability and creation time are
// never touched.
func (r *bookRepository) Update(ctx context.Context, book *model.Book) error {
	return r.db.WithContext(ctx).Model(&bookRow{ID: book.ID}).
		Updates(map[string]interface{}{
			"title":  book.Title,
			"author": book.Author,
		}).Error
}

// Delete removes a book, returning gorm.ErrRecordNotFound when no row matched.
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&bookRow{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// WithTransaction executes a function within a database transaction. The
// transaction commits when fn returns nil and rolls back otherwise, panics
// included.
func (r *bookRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo BookRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &bookRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
