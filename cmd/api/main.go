package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wolfman30/cashoffer-leads/cmd/mainconfig"
	"github.com/wolfman30/cashoffer-leads/internal/api/router"
	appconfig "github.com/wolfman30/cashoffer-leads/internal/config"
	"github.com/wolfman30/cashoffer-leads/internal/notify"
	"github.com/wolfman30/cashoffer-leads/internal/observability/metrics"
	"github.com/wolfman30/cashoffer-leads/internal/submissions"
	"github.com/wolfman30/cashoffer-leads/internal/web"
	"github.com/wolfman30/cashoffer-leads/pkg/logging"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting cashoffer-leads API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	app := buildApp(context.Background(), cfg, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      app.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	// In-flight owner emails finish before exit.
	app.notifier.Wait()

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

type app struct {
	handler  http.Handler
	store    *submissions.InMemoryStore
	notifier *notify.LeadNotifier
}

func buildApp(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) *app {
	return newApp(cfg, setupEmailSender(ctx, cfg, logger), logger)
}

func newApp(cfg *appconfig.Config, sender notify.EmailSender, logger *logging.Logger) *app {
	store := submissions.NewInMemoryStore()

	var (
		metricsHandler http.Handler
		leadMetrics    *metrics.LeadMetrics
	)
	if cfg.MetricsEnabled {
		metricsHandler, leadMetrics = setupMetrics()
	}

	notifier := notify.NewLeadNotifier(sender, notify.LeadNotifierConfig{
		Recipients: cfg.NotifyRecipients,
		Timezone:   cfg.NotifyTimezone,
		Timeout:    cfg.NotifyTimeout,
		SiteName:   cfg.SiteName,
	}, leadMetrics, logger)
	if len(cfg.NotifyRecipients) == 0 {
		logger.Warn("NOTIFY_RECIPIENTS not set; new submissions will not be emailed")
	}

	submissionsHandler := submissions.NewHandler(store, logger,
		submissions.WithNotifier(notifier),
		submissions.WithMetrics(leadMetrics),
		submissions.WithIntakeDelay(cfg.IntakeDelay),
	)
	webHandler := web.NewHandler(web.Config{
		SiteName:         cfg.SiteName,
		SitePhone:        cfg.SitePhone,
		GoogleMapsAPIKey: cfg.GoogleMapsAPIKey,
	}, store, logger)

	if !cfg.AdminAuthEnabled() {
		logger.Warn("ADMIN_JWT_SECRET not set; /admin and /api/admin/submissions expose submitter contact details without authentication")
	}

	return &app{
		handler: router.New(&router.Config{
			Logger:             logger,
			SubmissionsHandler: submissionsHandler,
			WebHandler:         webHandler,
			MetricsHandler:     metricsHandler,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			AdminAuthSecret:    cfg.AdminJWTSecret,
		}),
		store:    store,
		notifier: notifier,
	}
}

func setupMetrics() (http.Handler, *metrics.LeadMetrics) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), metrics.NewLeadMetrics(reg)
}

// setupEmailSender prefers SendGrid, then SES, then a stub that only logs.
func setupEmailSender(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) notify.EmailSender {
	if cfg.SendGridAPIKey != "" {
		logger.Info("using SendGrid for lead notifications", "from", cfg.SendGridFromEmail)
		return notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger)
	}

	if cfg.SESFromEmail != "" {
		awsCfg, err := mainconfig.LoadAWSConfig(ctx, cfg)
		if err != nil {
			logger.Error("failed to load AWS config; falling back to stub email sender", "error", err)
			return notify.NewStubEmailSender(logger)
		}
		logger.Info("using SES for lead notifications", "from", cfg.SESFromEmail, "region", cfg.AWSRegion)
		return notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
			FromEmail: cfg.SESFromEmail,
			FromName:  cfg.SESFromName,
		}, logger)
	}

	logger.Info("no email provider configured; lead notifications will only be logged")
	return notify.NewStubEmailSender(logger)
}
