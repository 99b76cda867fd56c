package handler

import (
	"fmt"
	"net/http"
	"time"
)

// AppointmentEvents streams change events over SSE. Every event tells the
// dashboard the appointment list changed; the dashboard refetches it.
func (h *Handler) AppointmentEvents(w http.ResponseWriter, r *http.Request) {
	rc := http.NewResponseController(w)

	// the server-wide write timeout would kill the stream
	if err := rc.SetWriteDeadline(time.Time{}); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		return
	}

	ch := h.hub.Subscribe()
	defer h.hub.Unsubscribe(ch)

	for {
		select {
		case <-r.Context().Done():
			return
		case op, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: change\ndata: %s\n\n", op)
			if err := rc.Flush(); err != nil {
				return
			}
		}
	}
}
