package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"biblio/internal/service"
)

// BookHandler handles book endpoints.
type BookHandler struct {
	bookService service.BookService
}

// NewBookHandler creates a new book handler.
func NewBookHandler(bookService service.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// CreateBook godoc
// @Summary Create book
// @Tags books
// @Accept json
// @Produce json
// @Param book body BookRequest true "Book payload"
// @Success 200 {object} model.Book
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /books [post]
func (h *BookHandler) CreateBook(c echo.Context) error {
	var req BookRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	book, err := h.bookService.CreateBook(c.Request().Context(), *req.Title, *req.Author, *req.ISBN)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// ListBooks godoc
// @Summary List books
// @Tags books
// @Produce json
// @Success 200 {array} model.Book
// @Router /books [get]
func (h *BookHandler) ListBooks(c echo.Context) error {
	books, err := h.bookService.ListBooks(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// GetBook godoc
// @Summary Get book by id
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} model.Book
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /books/{id} [get]
func (h *BookHandler) GetBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	book, err := h.bookService.GetBook(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// UpdateBook godoc
// @Summary Replace title and author of a book
// @Description The isbn field is required in the payload but is not updated.
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Param book body BookRequest true "Book payload"
// @Success 200 {object} model.Book
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /books/{id} [put]
func (h *BookHandler) UpdateBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req BookRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	book, err := h.bookService.UpdateBook(c.Request().Context(), id, *req.Title, *req.Author)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// DeleteBook godoc
// @Summary Delete book
// @Tags books
// @Param id path int true "Book ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /books/{id} [delete]
func (h *BookHandler) DeleteBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.bookService.DeleteBook(c.Request().Context(), id); err != nil {
		return serviceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
