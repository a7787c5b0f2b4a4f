package controller

import (
	"github.com/aouiniamine/recipe-recommender-service/internal/features/health/service"
	"github.com/aouiniamine/recipe-recommender-service/pkg/response"
	"github.com/labstack/echo/v4"
)

type HealthController struct {
	service service.HealthService
}

func New(svc service.HealthService) *HealthController {
	return &HealthController{
		service: svc,
	}
}

func (h *HealthController) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/health")
	g.GET("/readiness", h.Readiness)
	g.GET("/liveness", h.Liveness)
}

// Readiness godoc
// @Summary Readiness probe
// @Description Reports whether the service is ready to accept traffic
// @Tags health
// @Produce json
// @Success 200 {object} dto.ReadinessResponse
// @Router /health/readiness [get]
func (h *HealthController) Readiness(c echo.Context) error {
	return response.OK(c, h.service.Readiness(c.Request().Context()))
}

// Liveness godoc
// @Summary Liveness probe
// @Description Reports whether the service process is up
// @Tags health
// @Produce json
// @Success 200 {object} dto.LivenessResponse
// @Router /health/liveness [get]
func (h *HealthController) Liveness(c echo.Context) error {
	return response.OK(c, h.service.Liveness(c.Request().Context()))
}
