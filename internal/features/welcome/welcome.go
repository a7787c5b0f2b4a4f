package welcome

import (
	"github.com/aouiniamine/recipe-recommender-service/internal/features/welcome/controller"
	"github.com/aouiniamine/recipe-recommender-service/internal/features/welcome/service"
	"github.com/labstack/echo/v4"
)

type Feature struct {
	Controller *controller.WelcomeController
	Service    service.WelcomeService
}

func New() *Feature {
	svc := service.New()
	ctrl := controller.New(svc)

	return &Feature{
		Controller: ctrl,
		Service:    svc,
	}
}

func (f *Feature) RegisterRoutes(e *echo.Echo) {
	f.Controller.RegisterRoutes(e)
}
