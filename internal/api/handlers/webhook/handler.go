package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/reservation-relay/internal/api/respond"
	"github.com/aliskhannn/reservation-relay/internal/config"
	"github.com/aliskhannn/reservation-relay/internal/model"
	"github.com/aliskhannn/reservation-relay/internal/normalize"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/webhook/mock.go -package=mocks

type reservationService interface {
	IngestWebhook(ctx context.Context, payload interface{}) (model.Reservation, error)
}

type webhookRegistrar interface {
	RegisterWebhook(ctx context.Context, publicURL string) error
}

// Handler serves the inbound webhook endpoint and provider registration.
type Handler struct {
	service   reservationService
	registrar webhookRegistrar
	cfg       *config.Config
}

func NewHandler(s reservationService, r webhookRegistrar, cfg *config.Config) *Handler {
	return &Handler{service: s, registrar: r, cfg: cfg}
}

// Receive ingests one provider webhook. Payload-shape failures are the
// sender's fault (400); anything past normalization is ours (500).
func (h *Handler) Receive(c *ginext.Context) {
	if c.Request.Header.Get("X-Webhook-Secret") != h.cfg.Webhook.Secret {
		zlog.Logger.Warn().Msg("webhook with invalid secret rejected")
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("invalid webhook secret"))
		return
	}

	var payload interface{}
	if err := json.NewDecoder(c.Request.Body).Decode(&payload); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to decode webhook body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	rec, err := h.service.IngestWebhook(c.Request.Context(), payload)
	if err != nil {
		if errors.Is(err, normalize.ErrInvalidPayload) {
			zlog.Logger.Warn().Err(err).Msg("webhook payload rejected")
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to ingest webhook")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	zlog.Logger.Info().
		Str("reservation_id", rec.ReservationID).
		Str("status", rec.Status).
		Msg("webhook ingested")

	respond.JSON(c.Writer, http.StatusOK, map[string]bool{"ok": true})
}

// Register asks the provider to deliver webhooks to our public URL,
// retrying per the configured strategy.
func (h *Handler) Register(c *ginext.Context) {
	publicURL := h.cfg.Webhook.PublicURL
	if publicURL == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("public webhook URL is not configured"))
		return
	}

	strategy := h.cfg.Retry
	if strategy.Attempts < 1 {
		strategy.Attempts = 1
	}
	delay := strategy.Delay

	var err error
	for attempt := 0; attempt < strategy.Attempts; attempt++ {
		if attempt > 0 {
			time.Sleep(delay)
			delay = time.Duration(float64(delay) * strategy.Backoff)
		}

		if err = h.registrar.RegisterWebhook(c.Request.Context(), publicURL); err == nil {
			respond.JSON(c.Writer, http.StatusOK, map[string]bool{"ok": true})
			return
		}

		zlog.Logger.Warn().Err(err).Int("attempt", attempt+1).Msg("webhook registration failed")
	}

	zlog.Logger.Error().Err(err).Msg("failed to register webhook with provider")
	respond.Fail(c.Writer, http.StatusBadGateway, fmt.Errorf("failed to register webhook"))
}
