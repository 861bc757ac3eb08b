package events

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/reservation-relay/internal/api/respond"
	"github.com/aliskhannn/reservation-relay/internal/events"
)

// Handler streams live-update events to dashboard clients over SSE.
type Handler struct {
	hub *events.Hub
}

func NewHandler(hub *events.Hub) *Handler {
	return &Handler{hub: hub}
}

// Stream subscribes the connection to the hub and forwards events until
// the client disconnects.
func (h *Handler) Stream(c *ginext.Context) {
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("streaming unsupported"))
		return
	}

	header := c.Writer.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)

	fmt.Fprint(c.Writer, "event: ready\ndata: {\"ok\":true}\n\n")
	flusher.Flush()

	ch := h.hub.Subscribe()
	defer h.hub.Unsubscribe(ch)

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}

			data, err := json.Marshal(ev.Data)
			if err != nil {
				zlog.Logger.Error().Err(err).Str("event", ev.Name).Msg("failed to marshal event")
				continue
			}

			fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", ev.Name, data)
			flusher.Flush()
		}
	}
}
