package handler

// Request bodies use pointer fields so that "required" means present and not
// null. Empty strings are accepted; no content rules apply.

// BookRequest is the payload for creating or replacing a book.
type BookRequest struct {
	Title  *string `json:"title" validate:"required"`
	Author *string `json:"author" validate:"required"`
	ISBN   *string `json:"isbn" validate:"required"`
}

// UserRequest is the payload for registering a user.
type UserRequest struct {
	Name  *string `json:"name" validate:"required"`
	Email *string `json:"email" validate:"required"`
	Phone *string `json:"phone" validate:"required"`
}

// LoanRequest is the payload for recording a loan.
type LoanRequest struct {
	UserID *uint `json:"user_id" validate:"required"`
	BookID *uint `json:"book_id" validate:"required"`
}

// CategoryRequest is the payload for creating a category.
type CategoryRequest struct {
	Name        *string `json:"name" validate:"required"`
	Description *string `json:"description"`
}
