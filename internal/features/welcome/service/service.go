package service

import (
	"context"
	"fmt"

	"github.com/aouiniamine/recipe-recommender-service/internal/features/welcome/dto"
)

const ServiceName = "recipe-recommender-service"

type WelcomeService interface {
	Greet(ctx context.Context) *dto.WelcomeResponse
	GreetByName(ctx context.Context, name string) *dto.WelcomeResponse
}

type welcomeService struct{}

func New() WelcomeService {
	return &welcomeService{}
}

func (s *welcomeService) Greet(ctx context.Context) *dto.WelcomeResponse {
	return &dto.WelcomeResponse{
		Message: "Hello, welcome to " + ServiceName,
	}
}

// GreetByName interpolates name as-is. Empty names and arbitrary characters
// are accepted; escaping is left to the JSON encoder.
func (s *welcomeService) GreetByName(ctx context.Context, name string) *dto.WelcomeResponse {
	return &dto.WelcomeResponse{
		Message: fmt.Sprintf("Hello, %s! Welcome to %s", name, ServiceName),
	}
}
