package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"shopfront/internal/catalog"
	"shopfront/internal/config"
	apphttp "shopfront/internal/http"
	"shopfront/internal/notify"
	"shopfront/internal/service"
	"shopfront/internal/store"
	"shopfront/internal/store/sqlite"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		logger.Fatalf("auth jwt secret is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()

	kv := sqlite.NewKV(db)
	if err := kv.Init(ctx); err != nil {
		logger.Fatalf("init kv store: %v", err)
	}

	adapter := store.NewAdapter(kv, logger)
	cat := catalog.New()
	notifier := notify.LogNotifier{Logger: logger}

	cartService := service.NewCartService(adapter, cat, notifier, nil, service.CheckoutConfig{
		FreeShippingThreshold: cfg.Checkout.FreeShippingThreshold,
		ShippingFee:           cfg.Checkout.ShippingFee,
		TaxRate:               cfg.Checkout.TaxRate,
		ProcessingDelay:       time.Duration(cfg.Checkout.ProcessingDelayMs) * time.Millisecond,
	}, logger)
	sessionService := service.NewSessionService(adapter, logger)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	tokens := apphttp.NewTokenIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)
	handler := apphttp.NewHandler(cat, cartService, sessionService, tokens)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}
