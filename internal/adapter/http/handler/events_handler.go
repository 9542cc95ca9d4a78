package handler

import (
	"io"

	"fairwager/internal/adapter/bus"

	"github.com/gin-gonic/gin"
)

// EventsHandler streams bus events to clients over server-sent events.
type EventsHandler struct {
	bus *bus.MemoryBus
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(b *bus.MemoryBus) *EventsHandler {
	return &EventsHandler{bus: b}
}

// Stream handles GET /api/v1/events. The subscription is dropped as soon as
// the client disconnects; a slow client loses events rather than stalling
// the publisher.
func (h *EventsHandler) Stream(c *gin.Context) {
	ch, cancel := h.bus.Subscribe()
	defer cancel()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case evt, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(string(evt.Type), evt)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
