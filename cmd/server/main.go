package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"netbank-prototype/internal/config"
	"netbank-prototype/internal/handlers"
	"netbank-prototype/internal/middleware"
	"netbank-prototype/internal/notify"
	"netbank-prototype/internal/services"
	"netbank-prototype/internal/session"
	"netbank-prototype/internal/staticdata"
	"netbank-prototype/internal/ui"
	"netbank-prototype/internal/validation"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const version = "1.0.0"

func main() {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	cfg := config.Load()

	logger := setupLogger(os.Getenv("LOG_LEVEL"))
	slog.SetDefault(logger)

	logger.Info("starting netbank prototype",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"environment", cfg.Server.Environment,
	)

	// Session storage: file-backed when a path is configured, memory otherwise
	var store session.Store
	if cfg.Session.FilePath != "" {
		store = session.NewFileStore(cfg.Session.FilePath, logger)
	} else {
		store = session.NewMemoryStore()
	}

	metrics := services.NewPrometheusMetrics()

	state := ui.NewApplicationState(store)
	view := ui.NewViewController(state, cfg.Simulation.AnnouncementDuration, metrics, logger)
	sink := notify.NewSink(logger).WithDefaultDuration(cfg.Simulation.NotificationDuration)
	applier := ui.NewApplier(view, sink, logger)

	formValidator := validation.NewFormValidator(
		cfg.Limits.PasswordMinLength,
		cfg.Limits.TransferLimit,
		staticdata.AccountByID,
	)

	loginService := services.NewLoginService(formValidator, state, cfg.Simulation.LoginDelay, metrics, logger)
	transferService := services.NewTransferService(formValidator, cfg.Simulation.TransferDelay, metrics, logger)
	navigationService := services.NewNavigationService(state, logger)
	statementService := services.NewStatementService(logger)

	dispatcher := ui.NewDispatcher()
	dispatcher.Register(ui.ActionLoginSubmit, func(ctx context.Context, action ui.Action) []ui.Effect {
		_, effects := loginService.Submit(ctx, action.Login)
		return effects
	})
	dispatcher.Register(ui.ActionTransferSubmit, func(ctx context.Context, action ui.Action) []ui.Effect {
		_, _, effects := transferService.Submit(ctx, action.Transfer)
		return effects
	})
	dispatcher.Register(ui.ActionTabSelect, func(ctx context.Context, action ui.Action) []ui.Effect {
		return navigationService.SelectTab(action.Screen)
	})
	dispatcher.Register(ui.ActionLogoutClick, func(ctx context.Context, action ui.Action) []ui.Effect {
		return loginService.Logout()
	})
	dispatcher.Register(ui.ActionPasswordToggle, func(ctx context.Context, action ui.Action) []ui.Effect {
		return navigationService.TogglePasswordVisibility()
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
	}))

	h := handlers.Handlers{
		Auth:         handlers.NewAuthHandler(loginService, applier, view, state),
		Transfer:     handlers.NewTransferHandler(transferService, applier, view, state),
		Screen:       handlers.NewScreenHandler(dispatcher, applier, view),
		Account:      handlers.NewAccountHandler(statementService, state),
		Transaction:  handlers.NewTransactionHandler(statementService, state),
		Notification: handlers.NewNotificationHandler(sink),
		Health:       handlers.NewHealthHandler(store, version),
	}
	if cfg.IsDevelopment() {
		h.Dev = handlers.NewDevHandler(
			services.NewDemoDataGenerator(time.Now().UnixNano()),
			statementService,
		)
	}

	handlers.RegisterRoutes(e, h, cfg.IsDevelopment())

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- e.Start(cfg.Server.Host + ":" + cfg.Server.Port)
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	case sig := <-shutdown:
		logger.Info("shutdown signal received", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown server gracefully", "error", err)
			os.Exit(1)
		}

		logger.Info("server shutdown complete")
	}
}

// setupLogger creates a structured JSON logger with the given log level
func setupLogger(levelStr string) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
