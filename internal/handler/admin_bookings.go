package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/torioweb/cj-hair-lounge/backend/internal/domain"
)

func (h *Handler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	// opportunistic housekeeping; the dashboard list is the natural place to
	// drop cancelled appointments whose date has passed
	today := time.Now().In(h.location).Format("2006-01-02")
	if purged, err := h.repository.PurgeExpiredCancelled(today); err != nil {
		slog.Warn("failed to purge expired cancelled appointments", "error", err)
	} else if purged > 0 {
		slog.Info("purged expired cancelled appointments", "count", purged)
	}

	appointments, err := h.repository.GetAllAppointments()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "appointments fetched", appointments)
}

func (h *Handler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	apt := r.Context().Value(AppointmentCtx).(*domain.Appointment)

	var req struct {
		Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	next := domain.AppointmentStatus(req.Status)
	if !apt.Status.CanTransitionTo(next) {
		h.errorResponse(w, r, fmt.Sprintf("cannot move a %s appointment to %s", apt.Status, next))
		return
	}

	apt.Status = next

	if err := h.repository.UpdateAppointmentStatus(apt); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "the appointment was changed by someone else, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "status updated", apt)
}

func (h *Handler) UpdateAppointmentNotes(w http.ResponseWriter, r *http.Request) {
	apt := r.Context().Value(AppointmentCtx).(*domain.Appointment)

	var req struct {
		Notes string `json:"notes" validate:"max=1000"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	apt.Notes = strings.TrimSpace(req.Notes)

	if err := h.repository.UpdateAppointmentNotes(apt); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "the appointment was changed by someone else, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "notes updated", apt)
}
