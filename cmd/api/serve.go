package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/justsurfingit/job-carousel/internal/config"
	"github.com/justsurfingit/job-carousel/internal/handlers"
	"github.com/justsurfingit/job-carousel/internal/logging"
	"github.com/justsurfingit/job-carousel/internal/middleware"
	"github.com/justsurfingit/job-carousel/internal/services"
	"github.com/justsurfingit/job-carousel/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web tracker",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(envFile)
		if err != nil {
			fatal("Error loading configuration", err)
		}
		log := logging.New(cfg.LogLevel, cfg.LogFormat)
		gin.SetMode(cfg.GinMode)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		client := store.NewClient(cfg.StoreEndpoint,
			store.WithTimeout(cfg.StoreTimeout),
			store.WithLogger(log.WithField("component", "store")),
		)

		opts := services.TrackerOptions{
			Notifier:      services.NewNotifier(cfg.NotificationTTL, time.Now),
			Logger:        log.WithField("component", "tracker"),
			ViewportWidth: cfg.DefaultViewportWidth,
		}
		if cfg.ExtractorEnabled() {
			llm, err := services.NewLLMService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
			if err != nil {
				log.WithError(err).Warn("⚠️  posting extraction disabled")
			} else {
				opts.Extractor = llm
				log.WithField("model", cfg.GeminiModel).Info("✅ posting extraction enabled")
			}
		}
		tracker := services.NewTrackerService(client, opts)

		limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, log)
		limiter.StartCleanup(time.Minute, ctx.Done())

		router, err := handlers.NewRouter(tracker, handlers.RouterOptions{
			Logger:       log,
			Limiter:      limiter,
			AllowOrigins: cfg.CORSAllowOrigins,
		})
		if err != nil {
			fatal("Error building router", err)
		}

		// First load happens in the background so the page is ready sooner.
		go func() {
			if err := tracker.EnsureLoaded(ctx); err != nil {
				log.WithError(err).Warn("initial load failed")
			}
		}()

		server := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       120 * time.Second,
		}
		go func() {
			log.WithField("port", cfg.Port).Info("🚀 server starting")
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				fatal("Server failed to start", err)
			}
		}()

		<-ctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("server shutdown error")
		}
	},
}
