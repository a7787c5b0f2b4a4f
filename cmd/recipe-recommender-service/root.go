package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/aouiniamine/recipe-recommender-service/docs"

	"github.com/aouiniamine/recipe-recommender-service/internal/config"
	"github.com/aouiniamine/recipe-recommender-service/internal/features/health"
	"github.com/aouiniamine/recipe-recommender-service/internal/features/welcome"
	"github.com/aouiniamine/recipe-recommender-service/internal/kv"
	"github.com/aouiniamine/recipe-recommender-service/internal/logger"
	"github.com/aouiniamine/recipe-recommender-service/internal/middleware"
	"github.com/aouiniamine/recipe-recommender-service/internal/server"
	"github.com/aouiniamine/recipe-recommender-service/internal/version"
	"github.com/joho/godotenv"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type serveArgs struct {
	host string
	port string
}

func newRootCmd() *cobra.Command {
	args := &serveArgs{}

	root := &cobra.Command{
		Use:           "recipe-recommender-service",
		Short:         "Recipe recommender HTTP service",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd, args)
		},
	}
	bindServeFlags(root, args)

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd, args)
		},
	}
	bindServeFlags(serve, args)

	root.AddCommand(serve, newVersionCmd())
	return root
}

func bindServeFlags(cmd *cobra.Command, args *serveArgs) {
	flags := cmd.Flags()
	flags.StringVar(&args.host, "host", "", "bind address (overrides HOST)")
	flags.StringVarP(&args.port, "port", "p", "", "bind port (overrides PORT)")
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

func loadConfig(args *serveArgs) *config.Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if args.host != "" {
		cfg.Server.Host = args.host
	}
	if args.port != "" {
		cfg.Server.Port = args.port
	}
	return cfg
}

func runServer(cmd *cobra.Command, args *serveArgs) error {
	cfg := loadConfig(args)

	zlog, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer zlog.Sync()

	store, closeStore := rateLimitStore(cfg, zlog)
	defer closeStore()

	srv := newServer(cfg, zlog, store)
	if err := srv.Listen(); err != nil {
		zlog.Error("failed to start server", zap.Error(err))
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve()
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			zlog.Error("server stopped", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	zlog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("server forced to shutdown", zap.Error(err))
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	zlog.Info("server exited gracefully")
	return nil
}

func newServer(cfg *config.Config, zlog *zap.Logger, store echomw.RateLimiterStore) *server.Server {
	srv := server.New(cfg, zlog, store)
	if cfg.SwaggerEnabled {
		srv.Echo().GET("/swagger/*", echoSwagger.WrapHandler)
	}
	srv.RegisterRoutes(health.New().RegisterRoutes)
	srv.RegisterRoutes(welcome.New().RegisterRoutes)
	return srv
}

// rateLimitStore picks the redis store when reachable and falls back to an
// in-process limiter otherwise. Returns a nil store when limiting is off.
func rateLimitStore(cfg *config.Config, zlog *zap.Logger) (echomw.RateLimiterStore, func()) {
	if !cfg.RateLimit.Enabled {
		return nil, func() {}
	}

	rds, err := kv.NewRedis(kv.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		zlog.Warn("redis unavailable, using in-memory rate limiter", zap.Error(err))
		return middleware.NewMemoryStore(cfg.RateLimit), func() {}
	}

	return middleware.NewRedisStore(rds.Client, cfg.RateLimit, zlog), func() { rds.Close() }
}
