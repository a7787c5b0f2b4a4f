package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aouiniamine/recipe-recommender-service/internal/features/welcome/dto"
	"github.com/aouiniamine/recipe-recommender-service/internal/features/welcome/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEcho() *echo.Echo {
	e := echo.New()
	New(service.New()).RegisterRoutes(e)
	return e
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestWelcome(t *testing.T) {
	rec := get(newEcho(), "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"message":"Hello, welcome to recipe-recommender-service"}`+"\n", rec.Body.String())
}

func TestWelcomeWithName(t *testing.T) {
	rec := get(newEcho(), "/Alice")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"message":"Hello, Alice! Welcome to recipe-recommender-service"}`+"\n", rec.Body.String())
}

func TestWelcomeIsIdempotent(t *testing.T) {
	e := newEcho()

	for _, target := range []string{"/", "/Bob"} {
		first := get(e, target).Body.String()
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, get(e, target).Body.String())
		}
	}
}

func TestWelcomeWithEncodedName(t *testing.T) {
	cases := []struct {
		target string
		want   string
	}{
		{"/Alice%20Smith", "Hello, Alice Smith! Welcome to recipe-recommender-service"},
		{"/Alice%2FSmith", "Hello, Alice/Smith! Welcome to recipe-recommender-service"},
		{"/%3Cb%3E%22hi%22", `Hello, <b>"hi"! Welcome to recipe-recommender-service`},
		{"/J%C3%BCrgen", "Hello, Jürgen! Welcome to recipe-recommender-service"},
	}

	e := newEcho()
	for _, c := range cases {
		t.Run(c.target, func(t *testing.T) {
			rec := get(e, c.target)
			require.Equal(t, http.StatusOK, rec.Code)

			var body dto.WelcomeResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, c.want, body.Message)
		})
	}
}

func TestWelcomeNotFound(t *testing.T) {
	e := newEcho()

	for _, target := range []string{"/nonexistent/deep/path", "/Alice/"} {
		t.Run(target, func(t *testing.T) {
			assert.Equal(t, http.StatusNotFound, get(e, target).Code)
		})
	}
}
