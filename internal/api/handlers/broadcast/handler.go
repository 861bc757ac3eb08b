package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/reservation-relay/internal/api/dto"
	"github.com/aliskhannn/reservation-relay/internal/api/respond"
	"github.com/aliskhannn/reservation-relay/internal/model"
	"github.com/aliskhannn/reservation-relay/internal/service/broadcast"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/broadcast/mock.go -package=mocks

type broadcastService interface {
	Broadcast(ctx context.Context, message string, f model.ReservationFilter) (broadcast.Result, error)
}

// Handler serves the guest broadcast endpoint.
type Handler struct {
	service   broadcastService
	validator *validator.Validate
}

func NewHandler(s broadcastService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// Send fans the message out to every matching guest. Partial delivery
// failure is an expected outcome reported in the body, not an error
// status; only a store failure fails the request itself.
func (h *Handler) Send(c *ginext.Context) {
	var req dto.BroadcastRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to decode broadcast request")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate broadcast request")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("message is required"))
		return
	}

	result, err := h.service.Broadcast(c.Request.Context(), req.Message, req.Filters.ToModel())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to broadcast message")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.JSON(c.Writer, http.StatusOK, result)
}
