package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"github.com/gpedrosad/mapra2/internal/cms"
	"github.com/gpedrosad/mapra2/internal/config"
	"github.com/gpedrosad/mapra2/internal/i18n"
	"github.com/gpedrosad/mapra2/internal/observability"
	"github.com/gpedrosad/mapra2/internal/site"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "web: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Flags override the environment for local runs.
	flag.StringVar(&cfg.Server.Addr, "addr", cfg.ListenAddr(), "HTTP listen address")
	flag.StringVar(&cfg.Paths.Templates, "templates", cfg.Paths.Templates, "templates directory")
	flag.StringVar(&cfg.Paths.Public, "public", cfg.Paths.Public, "public assets directory")
	flag.StringVar(&cfg.Paths.Locales, "locales", cfg.Paths.Locales, "locales directory")
	flag.StringVar(&cfg.Paths.Content, "content", cfg.Paths.Content, "content directory")
	flag.Parse()

	logger, err := observability.NewLogger(cfg.LogLevel, cfg.Site.Dev)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           a.routes(),
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          zap.NewStdLog(logger),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("web listening",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.Site.Env),
			zap.Bool("dev", cfg.Site.Dev),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newApp loads translations, site content and templates.
func newApp(cfg config.Config, logger *zap.Logger) (*app, error) {
	bundle, err := i18n.Load(cfg.Paths.Locales, i18n.DefaultLocale, i18n.Locales())
	if err != nil {
		return nil, fmt.Errorf("load locales: %w", err)
	}
	content, err := site.Load(filepath.Join(cfg.Paths.Content, "site.yaml"))
	if err != nil {
		return nil, fmt.Errorf("load site: %w", err)
	}
	v, err := loadViews(cfg.Paths.Templates, cfg.Site.Dev)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	client := cms.NewClient(cfg.CMSURL,
		cms.WithContentDir(cfg.Paths.Content),
		cms.WithLogger(logger.Named("cms")),
	)
	return &app{
		cfg:    cfg,
		logger: logger,
		bundle: bundle,
		site:   content,
		cms:    client,
		views:  v,
	}, nil
}
