package reservation

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/reservation-relay/internal/api/respond"
	"github.com/aliskhannn/reservation-relay/internal/model"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/reservation/mock.go -package=mocks

type reservationService interface {
	ListReservations(ctx context.Context, f model.ReservationFilter) ([]model.Reservation, error)
}

// Handler serves the reservation query endpoint.
type Handler struct {
	service reservationService
}

func NewHandler(s reservationService) *Handler {
	return &Handler{service: s}
}

// List returns the reservation page matching the query-string filter.
func (h *Handler) List(c *ginext.Context) {
	f := filterFromQuery(c)

	reservations, err := h.service.ListReservations(c.Request.Context(), f)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list reservations")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if reservations == nil {
		reservations = []model.Reservation{}
	}

	respond.OK(c.Writer, reservations)
}

// filterFromQuery reads string-typed filter parameters; unparsable numbers
// fall back to the repository defaults.
func filterFromQuery(c *ginext.Context) model.ReservationFilter {
	f := model.ReservationFilter{
		Status:      c.Query("status"),
		PropertyID:  c.Query("propertyId"),
		GuestID:     c.Query("guestId"),
		CheckInFrom: c.Query("checkInFrom"),
		CheckInTo:   c.Query("checkInTo"),
		Search:      c.Query("search"),
	}

	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		f.Limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil {
		f.Offset = v
	}

	return f
}
