package router

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"biblio/internal/config"
	"biblio/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	bookHandler *handler.BookHandler,
	userHandler *handler.UserHandler,
	categoryHandler *handler.CategoryHandler,
	loanHandler *handler.LoanHandler,
) {
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	if len(cfg.CORSAllowOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.CORSAllowOrigins,
		}))
	}

	e.Validator = NewValidator()
	e.JSONSerializer = &Serializer{}

	e.GET("/", handler.Root)
	e.GET("/health", handler.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/books", bookHandler.CreateBook)
	e.GET("/books", bookHandler.ListBooks)
	e.GET("/books/:id", bookHandler.GetBook)
	e.PUT("/books/:id", bookHandler.UpdateBook)
	e.DELETE("/books/:id", bookHandler.DeleteBook)

	e.POST("/users", userHandler.CreateUser)
	e.GET("/users", userHandler.ListUsers)
	e.GET("/users/:id", userHandler.GetUser)

	e.POST("/categories", categoryHandler.CreateCategory)
	e.GET("/categories", categoryHandler.ListCategories)

	e.POST("/loans", loanHandler.CreateLoan)
	e.GET("/loans", loanHandler.ListLoans)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator returns a validator that reports fields by their JSON name.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
