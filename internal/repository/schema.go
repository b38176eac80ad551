package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"biblio/internal/model"
)

// Row types mirror the storage layout. Domain models never carry ORM tags;
// the mappers below are the only place the two meet.

type bookRow struct {
	ID        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"size:255;not null;index"`
	Author    string    `gorm:"size:255;not null;index"`
	ISBN      string    `gorm:"column:isbn;size:64;not null;uniqueIndex"`
	Available bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (bookRow) TableName() string { return "books" }

type userRow struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:255;not null;index"`
	Email     string    `gorm:"size:255;not null;uniqueIndex"`
	Phone     string    `gorm:"size:64;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`
}

func (userRow) TableName() string { return "users" }

type categoryRow struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"size:255;not null;index"`
	Description *string   `gorm:"size:1024"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (categoryRow) TableName() string { return "categories" }

// loanRow keeps user_id/book_id as plain indexed columns: no foreign key
// constraint is declared.
type loanRow struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;index"`
	BookID     uint      `gorm:"not null;index"`
	LoanDate   time.Time `gorm:"not null"`
	ReturnDate *time.Time
	Returned   bool      `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

func (loanRow) TableName() string { return "loans" }

// Migrate creates or updates the four tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(tables()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Reset drops every table. Missing tables are not an error.
func Reset(ctx context.Context, db *gorm.DB) error {
	migrator := db.WithContext(ctx).Migrator()
	for _, table := range tables() {
		if err := migrator.DropTable(table); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	return nil
}

func tables() []interface{} {
	return []interface{}{&bookRow{}, &userRow{}, &categoryRow{}, &loanRow{}}
}

func toBookRow(b *model.Book) bookRow {
	return bookRow{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		ISBN:      b.ISBN,
		Available: b.Available,
		CreatedAt: b.CreatedAt,
	}
}

func (r bookRow) toModel() model.Book {
	return model.Book{
		ID:        r.ID,
		Title:     r.Title,
		Author:    r.Author,
		ISBN:      r.ISBN,
		Available: r.Available,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

func toUserRow(u *model.User) userRow {
	return userRow{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}

func (r userRow) toModel() model.User {
	return model.User{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

func toCategoryRow(c *model.Category) categoryRow {
	return categoryRow{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

func (r categoryRow) toModel() model.Category {
	return model.Category{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt.UTC(),
	}
}

func toLoanRow(l *model.Loan) loanRow {
	return loanRow{
		ID:         l.ID,
		UserID:     l.UserID,
		BookID:     l.BookID,
		LoanDate:   l.LoanDate,
		ReturnDate: l.ReturnDate,
		Returned:   l.Returned,
		CreatedAt:  l.CreatedAt,
	}
}

func (r loanRow) toModel() model.Loan {
	l := model.Loan{
		ID:        r.ID,
		UserID:    r.UserID,
		BookID:    r.BookID,
		LoanDate:  r.LoanDate.UTC(),
		Returned:  r.Returned,
		CreatedAt: r.CreatedAt.UTC(),
	}
	if r.ReturnDate != nil {
		returned := r.ReturnDate.UTC()
		l.ReturnDate = &returned
	}
	return l
}
