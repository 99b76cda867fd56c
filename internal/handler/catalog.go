package handler

import (
	"net/http"

	"github.com/torioweb/cj-hair-lounge/backend/internal/schedule"
)

func (h *Handler) GetStylists(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "stylists fetched", schedule.Staff())
}
