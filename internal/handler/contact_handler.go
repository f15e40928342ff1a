package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devcraft/portfolio-api/internal/dto"
	"github.com/devcraft/portfolio-api/internal/entity"
	"github.com/devcraft/portfolio-api/internal/middleware"
	"github.com/devcraft/portfolio-api/internal/service"
)

// ContactHandler exposes the contact-form endpoints.
type ContactHandler struct {
	service *service.ContactService
}

// NewContactHandler creates a new handler instance.
func NewContactHandler(service *service.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit handles POST /api/contact requests. The submission is durable once
// persisted; a failed notification email is logged and does not change the
// response.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req dto.ContactRequest
	if err := c.Bind(&req); err != nil {
		return FailWithDetails(c, http.StatusBadRequest, "Invalid form data", map[string]string{
			"body": "malformed JSON payload",
		})
	}

	stored, sendResult, err := h.service.Submit(c.Request().Context(), req)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			return FailWithDetails(c, http.StatusBadRequest, "Invalid form data", validationErr.Details)
		}
		log.Printf("contact: submit failed request_id=%s err=%v", middleware.RequestIDFromContext(c), err)
		return Fail(c, http.StatusInternalServerError, "Failed to submit contact form")
	}

	if !sendResult.OK {
		log.Printf("contact: notification not delivered request_id=%s id=%s err=%s",
			middleware.RequestIDFromContext(c), stored.ID, sendResult.Error)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"id":      stored.ID,
	})
}

// List handles GET /api/contact requests, returning submissions in insertion order.
func (h *ContactHandler) List(c echo.Context) error {
	submissions, err := h.service.ListSubmissions(c.Request().Context())
	if err != nil {
		log.Printf("contact: list failed request_id=%s err=%v", middleware.RequestIDFromContext(c), err)
		return Fail(c, http.StatusInternalServerError, "Failed to fetch submissions")
	}
	if submissions == nil {
		submissions = []entity.ContactSubmission{}
	}
	return c.JSON(http.StatusOK, submissions)
}
