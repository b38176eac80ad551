package repository

import (
	"context"

	"gorm.io/gorm"

	"biblio/internal/model"
)

// LoanRepository defines loan persistence operations.
type LoanRepository interface {
	Create(ctx context.Context, loan *model.Loan) error
	List(ctx context.Context) ([]model.Loan, error)
}

type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan repository.
func NewLoanRepository(db *gorm.DB) LoanRepository {
	return &loanRepository{db: db}
}

// Create creates a new loan record.
func (r *loanRepository) Create(ctx context.Context, loan *model.Loan) error {
	row := toLoanRow(loan)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	loan.ID = row.ID
	return nil
}

// List returns every loan.
func (r *loanRepository) List(ctx context.Context) ([]model.Loan, error) {
	var rows []loanRow
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	loans := make([]model.Loan, 0, len(rows))
	for _, row := range rows {
		loans = append(loans, row.toModel())
	}
	return loans, nil
}
