package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RootResponse is the body of the index route.
type RootResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the body of the health route.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Root godoc
// @Summary Service banner
// @Tags meta
// @Produce json
// @Success 200 {object} RootResponse
// @Router / [get]
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, RootResponse{Message: "Biblio - Library System"})
}

// Health godoc
// @Summary Liveness check
// @Tags meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Message: "API is running"})
}
