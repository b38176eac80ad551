package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/labstack/echo/v4"

	"biblio/docs"
	"biblio/internal/config"
	"biblio/internal/db"
	"biblio/internal/handler"
	"biblio/internal/repository"
	"biblio/internal/router"
	"biblio/internal/service"
)

// @title Biblio API
// @version 1.0
// @description Library catalogue API for books, users, categories and loans.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	ctx := context.Background()
	if cfg.ResetDB {
		log.Println("RESET_DB=true detected, dropping all tables...")
		if err := repository.Reset(ctx, gormDB); err != nil {
			log.Printf("Warning: failed to drop tables: %v", err)
		}
	}
	if err := repository.Migrate(ctx, gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// Initialize repositories
	bookRepo := repository.NewBookRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	loanRepo := repository.NewLoanRepository(gormDB)

	// Initialize services
	bookService := service.NewBookService(bookRepo)
	userService := service.NewUserService(userRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	loanService := service.NewLoanService(loanRepo)

	e := echo.New()
	e.HideBanner = true
	router.Register(
		e,
		cfg,
		handler.NewBookHandler(bookService),
		handler.NewUserHandler(userService),
		handler.NewCategoryHandler(categoryService),
		handler.NewLoanHandler(loanService),
	)

	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "localhost:" + cfg.ServerPort
	}
	docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(swaggerHost, "https://"), "http://")
	log.Printf("Swagger documentation available at: http://%s/swagger/index.html", docs.SwaggerInfo.Host)

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := db.Close(gormDB); err != nil {
		log.Printf("database close: %v", err)
	}
}
