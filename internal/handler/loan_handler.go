package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"biblio/internal/service"
)

// LoanHandler handles loan endpoints.
type LoanHandler struct {
	loanService service.LoanService
}

// NewLoanHandler creates a new loan handler.
func NewLoanHandler(loanService service.LoanService) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// CreateLoan godoc
// @Summary Record a loan
// @Description Neither the user nor the book is checked, and the book stays available.
// @Tags loans
// @Accept json
// @Produce json
// @Param loan body LoanRequest true "Loan payload"
// @Success 200 {object} model.Loan
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /loans [post]
func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req LoanRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	loan, err := h.loanService.CreateLoan(c.Request().Context(), *req.UserID, *req.BookID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

// ListLoans godoc
// @Summary List loans
// @Tags loans
// @Produce json
// @Success 200 {array} model.Loan
// @Router /loans [get]
func (h *LoanHandler) ListLoans(c echo.Context) error {
	loans, err := h.loanService.ListLoans(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, loans)
}
