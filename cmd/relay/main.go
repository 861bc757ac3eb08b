package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/zlog"

	broadcasthandler "github.com/aliskhannn/reservation-relay/internal/api/handlers/broadcast"
	eventshandler "github.com/aliskhannn/reservation-relay/internal/api/handlers/events"
	reservationhandler "github.com/aliskhannn/reservation-relay/internal/api/handlers/reservation"
	webhookhandler "github.com/aliskhannn/reservation-relay/internal/api/handlers/webhook"
	"github.com/aliskhannn/reservation-relay/internal/api/router"
	"github.com/aliskhannn/reservation-relay/internal/api/server"
	"github.com/aliskhannn/reservation-relay/internal/config"
	"github.com/aliskhannn/reservation-relay/internal/events"
	reservationrepo "github.com/aliskhannn/reservation-relay/internal/repository/reservation"
	broadcastsvc "github.com/aliskhannn/reservation-relay/internal/service/broadcast"
	reservationsvc "github.com/aliskhannn/reservation-relay/internal/service/reservation"
	"github.com/aliskhannn/reservation-relay/pkg/guestapi"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	repo := reservationrepo.NewRepository(db)
	guestClient := guestapi.NewClient(cfg.GuestAPI.BaseURL, cfg.GuestAPI.Timeout)
	hub := events.NewHub()

	reservationService := reservationsvc.NewService(repo, hub)
	broadcastService := broadcastsvc.NewService(repo, guestClient, cfg.Broadcast)

	webhookHandler := webhookhandler.NewHandler(reservationService, guestClient, cfg)
	reservationHandler := reservationhandler.NewHandler(reservationService)
	broadcastHandler := broadcasthandler.NewHandler(broadcastService, val)
	eventsHandler := eventshandler.NewHandler(hub)

	r := router.New(webhookHandler, reservationHandler, broadcastHandler, eventsHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		zlog.Logger.Info().Str("addr", cfg.Server.HTTPPort).Msg("starting server")
		if err := s.ListenAndServe(); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close master DB")
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Error().Err(err).Int("slave", i).Msg("failed to close slave DB")
		}
	}
}
