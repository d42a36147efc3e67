package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"zonos-storefront/internal/cart"
	"zonos-storefront/internal/catalog"
	"zonos-storefront/internal/catalog/static"
	"zonos-storefront/internal/config"
	"zonos-storefront/internal/db"
	"zonos-storefront/internal/httpserver"
	productrepo "zonos-storefront/internal/repository/product"
	"zonos-storefront/internal/zonos"
)

func main() {
	_ = godotenv.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Fatal("validate config")
	}

	ctx := context.Background()

	// The catalog reads from Postgres when a DSN is configured and falls
	// back to the built-in fixtures otherwise.
	var pool *pgxpool.Pool
	var catalogRepo catalog.Repository = static.New()
	if cfg.DBConnString != "" {
		pool, err = db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.WithError(err).Fatal("connect to db")
		}
		defer pool.Close()
		catalogRepo = productrepo.NewPostgres(pool, logger)
	}

	catalogService := catalog.New(catalogRepo)
	zonosClient := zonos.New(cfg.ZonosAPIURL(), cfg.CredentialToken, logger)
	cartService := cart.NewService(zonosClient, catalogService)
	cache := httpserver.NewTagCache()
	cartActions := cart.NewActions(cartService, cache, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, pool, httpserver.Deps{
		Cart:               cartService,
		Actions:            cartActions,
		Catalog:            catalogService,
		Cache:              cache,
		CookieTTL:          cfg.CartCookieTTL,
		AllowedOrigins:     cfg.AllowedOrigins,
		RevalidationSecret: cfg.RevalidationSecret,
	})
	if err != nil {
		logger.WithError(err).Fatal("init server")
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.WithField("addr", cfg.HTTPAddr).Info("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.WithField("signal", sig.String()).Info("shutting down")
	case err := <-serverErr:
		logger.WithError(err).Error("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
	} else {
		logger.Info("server stopped")
	}
}
