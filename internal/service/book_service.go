package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"biblio/internal/db"
	apperrors "biblio/internal/errors"
	"biblio/internal/model"
	"biblio/internal/repository"
)

// BookService handles catalogue operations.
type BookService interface {
	CreateBook(ctx context.Context, title, author, isbn string) (*model.Book, error)
	GetBook(ctx context.Context, id uint) (*model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	UpdateBook(ctx context.Context, id uint, title, author string) (*model.Book, error)
	DeleteBook(ctx context.Context, id uint) error
}

type bookService struct {
	repo repository.BookRepository
	now  func() time.Time
}

// NewBookService creates a new book service.
func NewBookService(repo repository.BookRepository) BookService {
	return &bookService{
		repo: repo,
		now:  time.Now,
	}
}

// CreateBook inserts a new, available book. A duplicate ISBN is reported by
// the store and surfaces as ErrConflict.
func (s *bookService) CreateBook(ctx context.Context, title, author, isbn string) (*model.Book, error) {
	book := &model.Book{
		Title:     title,
		Author:    author,
		ISBN:      isbn,
		Available: true,
		CreatedAt: timestamp(s.now),
	}
	if err := s.repo.Create(ctx, book); err != nil {
		if db.IsDuplicateKey(err) {
			return nil, apperrors.NewConflict(err)
		}
		return nil, err
	}
	return book, nil
}

// GetBook retrieves a book by ID.
func (s *bookService) GetBook(ctx context.Context, id uint) (*model.Book, error) {
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateBookErr(err)
	}
	return book, nil
}

// ListBooks returns all books.
func (s *bookService) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.List(ctx)
}

// UpdateBook replaces title and author of an existing book in one session.
func (s *bookService) UpdateBook(ctx context.Context, id uint, title, author string) (*model.Book, error) {
	var updated *model.Book
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.BookRepository) error {
		book, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		book.Title = title
		book.Author = author
		if err := repo.Update(ctx, book); err != nil {
			return err
		}
		updated = book
		return nil
	})
	if err != nil {
		return nil, translateBookErr(err)
	}
	return updated, nil
}

// DeleteBook removes a book by ID.
func (s *bookService) DeleteBook(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translateBookErr(err)
	}
	return nil
}

func translateBookErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrBookNotFound
	}
	return err
}
