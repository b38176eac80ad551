package model

import "time"

// Loan links one user to one book. Neither side is checked on creation and the
// book's availability is left as is.
type Loan struct {
	ID         uint       `json:"id"`
	UserID     uint       `json:"user_id"`
	BookID     uint       `json:"book_id"`
	LoanDate   time.Time  `json:"loan_date"`
	ReturnDate *time.Time `json:"return_date"`
	Returned   bool       `json:"returned"`
	CreatedAt  time.Time  `json:"created_at"`
}
