package commands

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gnanasekark/Online-property-listing/internal/handler"
	"github.com/Gnanasekark/Online-property-listing/internal/middleware"
	"github.com/Gnanasekark/Online-property-listing/pkg/config"
	"github.com/Gnanasekark/Online-property-listing/pkg/geocoder"
	"github.com/Gnanasekark/Online-property-listing/pkg/jwtutil"
	"github.com/Gnanasekark/Online-property-listing/pkg/logger"
	"github.com/Gnanasekark/Online-property-listing/pkg/metrics"
	"github.com/Gnanasekark/Online-property-listing/pkg/storage"
	"github.com/Gnanasekark/Online-property-listing/pkg/validate"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ServeCmd runs the HTTP API
func ServeCmd() *cobra.Command {
	var migrateFirst bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if migrateFirst {
				if err := migrate(ctx, cfg, log); err != nil {
					return err
				}
			}
			return serve(ctx, cfg, log)
		},
	}

	cmd.Flags().BoolVar(&migrateFirst, "migrate", true, "create the schema before serving")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	log.Info("Starting property listing service...", zap.String("environment", cfg.Server.Env))

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	images, err := storage.NewImageStore(cfg.Upload.Dir, cfg.Upload.URLPrefix, cfg.Upload.MaxBytes)
	if err != nil {
		return err
	}

	opts := handler.Options{
		Store:     store,
		JWT:       jwtutil.NewJWTUtil(&jwtutil.JWTConfig{SigningKey: cfg.JWT.SigningKey, ExpirationHours: cfg.JWT.ExpirationHours}),
		Images:    images,
		MaxImages: cfg.Upload.MaxImages,
	}
	if cfg.Geocoder.Enabled {
		opts.Places = geocoder.NewClient(cfg.Geocoder.BaseURL, cfg.Geocoder.UserAgent, cfg.Geocoder.Timeout)
		log.Info("Geocoder enabled", zap.String("url", cfg.Geocoder.BaseURL))
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validate.New()

	// order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.Middleware())
	e.Use(metrics.NewHTTPMetrics(cfg.ServiceName).Middleware())

	e.Static(cfg.Upload.URLPrefix, images.Dir())
	handler.New(opts).Register(e)

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
