package service

import (
	"context"

	"github.com/aouiniamine/recipe-recommender-service/internal/features/health/dto"
)

// HealthService answers the orchestrator probes. The service has no
// downstream dependencies, so both probes always report true.
type HealthService interface {
	Readiness(ctx context.Context) *dto.ReadinessResponse
	Liveness(ctx context.Context) *dto.LivenessResponse
}

type healthService struct{}

func New() HealthService {
	return &healthService{}
}

func (s *healthService) Readiness(ctx context.Context) *dto.ReadinessResponse {
	return &dto.ReadinessResponse{Ready: true}
}

func (s *healthService) Liveness(ctx context.Context) *dto.LivenessResponse {
	return &dto.LivenessResponse{Live: true}
}
