package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"darkher/config"
	httpapi "darkher/internal/http"
	"darkher/internal/idgen"
	"darkher/internal/notify"
	"darkher/internal/payment"
	"darkher/internal/seed"
	"darkher/internal/service"
	"darkher/internal/storage"
	"darkher/internal/store"

	_ "darkher/docs"
)

func main() {
	// Setup structured logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log.Info().Str("appName", cfg.AppName).Msg("Application starting")

	backend, err := storage.NewFileStore(cfg.DataDir, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize storage")
	}

	cart := store.NewCart(backend)
	catalog, err := store.NewCatalog(backend, seed.Products(), idgen.NewID, time.Now)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hydrate catalog")
	}

	notif := notify.NewLog(log.Logger)
	gateway := payment.New(cfg.PaymentDelay, cfg.PaymentSuccessRate, log.Logger)

	cartSvc := service.NewCartService(cart, catalog, notif)
	catalogSvc := service.NewCatalogService(catalog, notif)
	checkoutSvc := service.NewCheckoutService(cart, catalog, gateway, notif)

	srv := httpapi.NewServer(cartSvc, catalogSvc, checkoutSvc)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: srv.Engine(),
	}

	go func() {
		log.Info().Str("addr", httpServer.Addr).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
