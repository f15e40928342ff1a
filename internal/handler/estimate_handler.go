package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devcraft/portfolio-api/internal/dto"
	"github.com/devcraft/portfolio-api/internal/service"
)

// EstimateHandler exposes the project cost estimator.
type EstimateHandler struct {
	estimator *service.Estimator
}

// NewEstimateHandler creates a new handler instance.
func NewEstimateHandler(estimator *service.Estimator) *EstimateHandler {
	return &EstimateHandler{estimator: estimator}
}

// Estimate handles POST /api/estimate requests. The endpoint has no failure
// path: a malformed body degrades to the zero request and unknown enumerated
// values fall back to defaults inside the engine.
func (h *EstimateHandler) Estimate(c echo.Context) error {
	var req dto.EstimateRequest
	if err := c.Bind(&req); err != nil {
		req = dto.EstimateRequest{}
	}
	return c.JSON(http.StatusOK, h.estimator.Estimate(req))
}
