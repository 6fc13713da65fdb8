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

	"github.com/dukerupert/vanir/internal"
	"github.com/dukerupert/vanir/internal/coupon"
	"github.com/dukerupert/vanir/internal/handler"
	"github.com/dukerupert/vanir/internal/jobs"
	"github.com/dukerupert/vanir/internal/middleware"
	"github.com/dukerupert/vanir/internal/pricing"
	"github.com/dukerupert/vanir/internal/router"
	"github.com/dukerupert/vanir/internal/service"
	"github.com/dukerupert/vanir/internal/shipping"
	"github.com/dukerupert/vanir/internal/tax"
	"github.com/dukerupert/vanir/internal/telemetry"
)

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Load coupon registry
	var registry coupon.Registry
	if cfg.Coupons.File != "" {
		static, err := coupon.LoadFile(cfg.Coupons.File)
		if err != nil {
			return fmt.Errorf("failed to load coupon registry: %w", err)
		}
		logger.Info("Coupon registry loaded", "file", cfg.Coupons.File, "coupons", static.Len())
		registry = static
	} else {
		empty, _ := coupon.NewStaticRegistry(nil)
		logger.Warn("No coupon file configured, all coupon codes will be rejected")
		registry = empty
	}

	// Initialize pricing collaborators
	taxCalc, err := tax.NewPercentageCalculator(cfg.Pricing.TaxRate)
	if err != nil {
		return fmt.Errorf("failed to initialize tax calculator: %w", err)
	}

	quoter, err := shipping.NewThresholdQuoter(cfg.Pricing.FreeShippingThresholdCents, cfg.Pricing.StandardShippingFeeCents)
	if err != nil {
		return fmt.Errorf("failed to initialize shipping quoter: %w", err)
	}

	calculator := pricing.NewCalculator(taxCalc, quoter)

	// Metrics
	httpMetrics := middleware.NewMetrics("vanir")
	businessMetrics := telemetry.NewBusinessMetrics("vanir")

	// Initialize services
	cartService := service.NewCartService(coupon.NewResolver(registry), businessMetrics)
	checkoutService := service.NewCheckoutService(cartService, calculator, businessMetrics)

	// Background cart sweeper
	sweeper := jobs.NewCartSweeper(cartService, cfg.Session.IdleTTL, cfg.Session.SweepInterval, logger)
	go sweeper.Run(ctx)

	// Router and handlers
	r := router.New(
		middleware.RequestID,
		middleware.WithRequestLogger(logger),
		httpMetrics.Middleware,
	)

	cartHandler := handler.NewCartHandler(cartService, cfg.Secure)
	checkoutHandler := handler.NewCheckoutHandler(cartService, checkoutService)
	handler.RegisterRoutes(r, cartHandler, checkoutHandler, httpMetrics.Handler())

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server listening", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
