package service

import (
	"context"
	"time"

	"biblio/internal/model"
	"biblio/internal/repository"
)

// LoanService records loans.
type LoanService interface {
	CreateLoan(ctx context.Context, userID, bookID uint) (*model.Loan, error)
	ListLoans(ctx context.Context) ([]model.Loan, error)
}

type loanService struct {
	loanRepo repository.LoanRepository
	now      func() time.Time
}

// NewLoanService creates a new loan service.
func NewLoanService(loanRepo repository.LoanRepository) LoanService {
	return &loanService{loanRepo: loanRepo, now: time.Now}
}

// CreateLoan records a loan dated now. The user and book are not looked up and
// the book's availability is not changed.
func (s *loanService) CreateLoan(ctx context.Context, userID, bookID uint) (*model.Loan, error) {
	now := timestamp(s.now)
	loan := &model.Loan{
		UserID:    userID,
		BookID:    bookID,
		LoanDate:  now,
		Returned:  false,
		CreatedAt: now,
	}
	if err := s.loanRepo.Create(ctx, loan); err != nil {
		return nil, err
	}
	return loan, nil
}

// ListLoans returns all loans.
func (s *loanService) ListLoans(ctx context.Context) ([]model.Loan, error) {
	return s.loanRepo.List(ctx)
}
