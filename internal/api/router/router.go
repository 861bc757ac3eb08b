package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/reservation-relay/internal/api/handlers/broadcast"
	"github.com/aliskhannn/reservation-relay/internal/api/handlers/events"
	"github.com/aliskhannn/reservation-relay/internal/api/handlers/reservation"
	"github.com/aliskhannn/reservation-relay/internal/api/handlers/webhook"
	"github.com/aliskhannn/reservation-relay/internal/api/respond"
)

func New(
	webhookHandler *webhook.Handler,
	reservationHandler *reservation.Handler,
	broadcastHandler *broadcast.Handler,
	eventsHandler *events.Handler,
) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	e.POST("/webhooks", webhookHandler.Receive)

	api := e.Group("/api")

	api.GET("/health", func(c *ginext.Context) {
		respond.JSON(c.Writer, http.StatusOK, map[string]bool{"ok": true})
	})
	api.GET("/reservations", reservationHandler.List)
	api.GET("/events", eventsHandler.Stream)
	api.POST("/broadcast", broadcastHandler.Send)
	api.POST("/webhooks/register", webhookHandler.Register)

	return e
}
