package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"zouqly-storefront/internal/catalog"
	"zouqly-storefront/internal/checkout"
	"zouqly-storefront/internal/config"
	"zouqly-storefront/internal/httpserver"
	"zouqly-storefront/internal/pricing"
	"zouqly-storefront/internal/session"
	"zouqly-storefront/internal/sheets"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	var (
		cat *catalog.Catalog
		err error
	)
	if cfg.CatalogPath != "" {
		cat, err = catalog.LoadFile(cfg.CatalogPath)
	} else {
		cat, err = catalog.Load()
	}
	if err != nil {
		logger.Fatalf("load catalog: %v", err)
	}
	logger.Printf("catalog loaded with %d products", cat.Len())

	gateway := sheets.New(cfg.SheetsWebAppURL, logger)
	if !gateway.Configured() {
		logger.Printf("sheets url not configured, order submission runs in no-op mode")
	}

	sessions := session.NewRegistry(cfg.SessionTTL)
	calc := pricing.New(cfg.DeliveryFees)
	checkoutSvc := checkout.New(gateway, calc, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Catalog:          cat,
		Sessions:         sessions,
		Checkout:         checkoutSvc,
		SheetsConfigured: gateway.Configured(),
		CORSOrigins:      cfg.CORSOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
