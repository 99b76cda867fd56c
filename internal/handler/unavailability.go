package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/torioweb/cj-hair-lounge/backend/internal/domain"
	"github.com/torioweb/cj-hair-lounge/backend/internal/schedule"
)

func (h *Handler) GetUnavailability(w http.ResponseWriter, r *http.Request) {
	stylistParam := r.URL.Query().Get("stylist")
	dateParam := r.URL.Query().Get("date")

	staff, ok := schedule.StaffByName(stylistParam)
	if !ok {
		h.errorResponse(w, r, "unknown stylist")
		return
	}

	if dateParam != "" {
		if _, err := time.ParseInLocation("2006-01-02", dateParam, h.location); err != nil {
			h.errorResponse(w, r, "date must be in YYYY-MM-DD format")
			return
		}

		record, err := h.repository.GetUnavailability(staff.Name, dateParam)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.successResponse(w, r, "no unavailability recorded", nil)
		case err != nil:
			h.internalServerError(w, r, err)
		default:
			h.successResponse(w, r, "unavailability fetched", record)
		}
		return
	}

	records, err := h.repository.GetUnavailabilityByBarber(staff.Name)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "unavailability fetched", records)
}

func (h *Handler) SetUnavailability(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Stylist   string   `json:"stylist" validate:"required"`
		Date      string   `json:"date" validate:"required,datetime=2006-01-02"`
		TimeSlots []string `json:"timeSlots"`
		IsFullDay bool     `json:"isFullDay"`
		Reason    string   `json:"reason" validate:"max=500"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	staff, ok := schedule.StaffByName(req.Stylist)
	if !ok {
		h.errorResponse(w, r, "unknown stylist")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, h.location)
	if err != nil {
		h.errorResponse(w, r, "date must be in YYYY-MM-DD format")
		return
	}

	if !req.IsFullDay && len(req.TimeSlots) == 0 {
		h.errorResponse(w, r, "select at least one time slot or mark the whole day")
		return
	}

	slots := req.TimeSlots
	if req.IsFullDay {
		// materialize the whole day so a later partial edit starts from the
		// real slot list instead of an empty one
		slots = schedule.SlotsForDate(date, staff.SlotGranularity)
	} else {
		window := schedule.WindowForWeekday(date.Weekday())
		for _, label := range slots {
			m, err := schedule.MinutesFromLabel(label)
			if err != nil {
				h.errorResponse(w, r, "invalid time slot")
				return
			}
			if !window.Contains(m) || (m-window.Open)%staff.SlotGranularity != 0 {
				h.errorResponse(w, r, "time slot is outside bookable hours")
				return
			}
		}
	}

	record := &domain.Unavailability{
		BarberName: staff.Name,
		Date:       req.Date,
		TimeSlots:  slots,
		IsFullDay:  req.IsFullDay,
		Reason:     strings.TrimSpace(req.Reason),
	}

	if err := h.repository.SetUnavailability(record); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "unavailability saved", record)
}

func (h *Handler) DeleteUnavailability(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid unavailability ID")
		return
	}

	if err := h.repository.DeleteUnavailability(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "unavailability removed", nil)
}
