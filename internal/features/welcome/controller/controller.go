package controller

import (
	"net/url"

	"github.com/aouiniamine/recipe-recommender-service/internal/features/welcome/service"
	"github.com/aouiniamine/recipe-recommender-service/pkg/response"
	"github.com/labstack/echo/v4"
)

type WelcomeController struct {
	service service.WelcomeService
}

func New(svc service.WelcomeService) *WelcomeController {
	return &WelcomeController{service: svc}
}

func (h *WelcomeController) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Welcome)
	e.GET("/:name", h.WelcomeWithName)
}

// Welcome godoc
// @Summary Welcome message
// @Description Greets every visitor of the service
// @Tags welcome
// @Produce json
// @Success 200 {object} dto.WelcomeResponse
// @Router / [get]
func (h *WelcomeController) Welcome(c echo.Context) error {
	return response.OK(c, h.service.Greet(c.Request().Context()))
}

// WelcomeWithName godoc
// @Summary Personalized welcome message
// @Description Greets the caller by the name given in the path
// @Tags welcome
// @Produce json
// @Param name path string true "Name to greet"
// @Success 200 {object} dto.WelcomeResponse
// @Router /{name} [get]
func (h *WelcomeController) WelcomeWithName(c echo.Context) error {
	return response.OK(c, h.service.GreetByName(c.Request().Context(), pathName(c)))
}

// echo matches on the raw path when the request carries escapes that
// differ from the default encoding (e.g. %2F), leaving the param encoded.
func pathName(c echo.Context) string {
	name := c.Param("name")
	if c.Request().URL.RawPath == "" {
		return name
	}
	if decoded, err := url.PathUnescape(name); err == nil {
		return decoded
	}
	return name
}
