package handlers

import (
	"io"
	"log"

	"doorway_ops/internal/events"

	"github.com/gin-gonic/gin"
)

// EventsHandler streams job-change events to the admin dashboard over
// server-sent events.

type EventsHandler struct {
	hub *events.Hub
}

func NewEventsHandler(hub *events.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Stream godoc
// @Summary      Live job event stream
// @Description  Server-sent events; one "message" event per job change.
// @Tags         events
// @Produce      text/event-stream
// @Success      200  {string}  string  "event stream"
// @Router       /admin/events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	ch := h.hub.Subscribe()
	defer h.hub.Unsubscribe(ch)

	log.Printf("[events][handler] subscriber connected remote=%s", c.ClientIP())

	c.Stream(func(w io.Writer) bool {
		select {
		case evt, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("message", evt)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})

	log.Printf("[events][handler] subscriber disconnected remote=%s", c.ClientIP())
}
