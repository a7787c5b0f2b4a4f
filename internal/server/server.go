package server

import (
	"context"
	"fmt"
	"net"

	"github.com/aouiniamine/recipe-recommender-service/internal/config"
	"github.com/aouiniamine/recipe-recommender-service/internal/middleware"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Server struct {
	echo     *echo.Echo
	config   *config.Config
	log      *zap.Logger
	listener net.Listener
}

// New builds the echo instance and its middleware chain. A nil limiter
// disables rate limiting.
func New(cfg *config.Config, log *zap.Logger, limiter echomw.RateLimiterStore) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	if limiter != nil {
		e.Use(middleware.RateLimit(limiter))
	}

	return &Server{
		echo:   e,
		config: cfg,
		log:    log,
	}
}

func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) RegisterRoutes(register func(e *echo.Echo)) {
	register(s.echo)
}

// Listen binds the configured address without serving yet, so a port
// conflict is reported before the serve loop starts.
func (s *Server) Listen() error {
	addr := s.config.Address()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = ln
	s.echo.Listener = ln
	return nil
}

// Addr is the bound address, empty before Listen.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Serve blocks until Shutdown and then returns http.ErrServerClosed.
func (s *Server) Serve() error {
	if s.listener == nil {
		return fmt.Errorf("server is not listening")
	}
	s.log.Info("server started", zap.String("addr", s.Addr()))
	return s.echo.Start(s.Addr())
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
