package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// errorResponse is the error body shape shared by all endpoints.
type errorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// Fail sends an error response without field detail.
func Fail(c echo.Context, status int, message string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, errorResponse{Error: message})
}

// FailWithDetails sends an error response carrying per-field detail.
func FailWithDetails(c echo.Context, status int, message string, details map[string]string) error {
	if status == 0 {
		status = http.StatusBadRequest
	}
	return c.JSON(status, errorResponse{Error: message, Details: details})
}
