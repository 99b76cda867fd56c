package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/torioweb/cj-hair-lounge/backend/internal/domain"
	"github.com/torioweb/cj-hair-lounge/backend/internal/schedule"
)

// dayBlocksFor loads the stylist's declared unavailability for a date.
// A missing record means the stylist is fully available.
func (h *Handler) dayBlocksFor(barberName string, date string) (schedule.DayBlocks, error) {
	u, err := h.repository.GetUnavailability(barberName, date)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return schedule.DayBlocks{}, nil
	case err != nil:
		return schedule.DayBlocks{}, err
	}

	return schedule.DayBlocks{FullDay: u.IsFullDay, Slots: u.TimeSlots}, nil
}

func (h *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	stylistParam := r.URL.Query().Get("stylist")
	dateParam := r.URL.Query().Get("date")
	serviceParam := r.URL.Query().Get("serviceId")

	staff, ok := schedule.StaffByName(stylistParam)
	if !ok {
		h.errorResponse(w, r, "unknown stylist")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateParam, h.location)
	if err != nil {
		h.errorResponse(w, r, "date must be in YYYY-MM-DD format")
		return
	}

	service, ok := staff.ServiceByID(serviceParam)
	if !ok {
		h.errorResponse(w, r, "unknown service")
		return
	}

	// the booking page must keep working when lookups fail, so a fetch
	// error degrades to "nothing booked" instead of a 500
	booked, err := h.repository.GetBlockingSlots(staff.Name, dateParam)
	if err != nil {
		slog.Warn("failed to load booked slots, offering unfiltered availability", "stylist", staff.Name, "date", dateParam, "error", err)
		booked = nil
	}

	blocks, err := h.dayBlocksFor(staff.Name, dateParam)
	if err != nil {
		slog.Warn("failed to load unavailability, offering unfiltered availability", "stylist", staff.Name, "date", dateParam, "error", err)
		blocks = schedule.DayBlocks{}
	}

	slots, err := staff.AvailableSlots(date, time.Now().In(h.location), int(service.Duration), booked, blocks)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "availability resolved", struct {
		Slots []string `json:"slots"`
	}{Slots: slots})
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Stylist       string `json:"stylist" validate:"required"`
		ServiceID     string `json:"serviceId" validate:"required"`
		Date          string `json:"date" validate:"required,datetime=2006-01-02"`
		Time          string `json:"time" validate:"required"`
		CustomerName  string `json:"customerName" validate:"required,min=1,max=100,person_name"`
		CustomerPhone string `json:"customerPhone" validate:"required,min=1,max=20,phone_number"`
		CustomerEmail string `json:"customerEmail" validate:"omitempty,email,max=255"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
	req.CustomerEmail = strings.TrimSpace(req.CustomerEmail)

	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	staff, ok := schedule.StaffByName(req.Stylist)
	if !ok {
		h.errorResponse(w, r, "unknown stylist")
		return
	}

	service, ok := staff.ServiceByID(req.ServiceID)
	if !ok {
		h.errorResponse(w, r, "unknown service")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, h.location)
	if err != nil {
		h.errorResponse(w, r, "date must be in YYYY-MM-DD format")
		return
	}

	now := time.Now().In(h.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.location)
	if date.Before(today) {
		h.errorResponse(w, r, "cannot book a date in the past")
		return
	}

	minutes, err := schedule.MinutesFromLabel(req.Time)
	if err != nil {
		h.errorResponse(w, r, "invalid time slot")
		return
	}
	window := schedule.WindowForWeekday(date.Weekday())
	if !window.Contains(minutes) || (minutes-window.Open)%staff.SlotGranularity != 0 {
		h.errorResponse(w, r, "time is outside bookable hours")
		return
	}

	// recheck on the server; the widget's slot list may be stale
	booked, err := h.repository.GetBlockingSlots(staff.Name, req.Date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	blocks, err := h.dayBlocksFor(staff.Name, req.Date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	available, err := staff.AvailableSlots(date, now, int(service.Duration), booked, blocks)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !slices.Contains(available, req.Time) {
		h.errorResponse(w, r, "this slot is no longer available, please pick another")
		return
	}

	apt := &domain.Appointment{
		BarberName:    staff.Name,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Service:       service.Name,
		Date:          req.Date,
		Time:          req.Time,
		Status:        domain.StatusPending,
		Price:         service.Price,
		Duration:      service.Duration,
	}

	if err := h.repository.CreateAppointment(apt); err != nil {
		pgErr := &pgconn.PgError{}
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "uq_appointments_slot" {
			h.errorResponse(w, r, "this slot is no longer available, please pick another")
			return
		}
		h.internalServerError(w, r, err)
		return
	}

	bookingRef := fmt.Sprintf("CLNT-%d", apt.BookingNumber)

	mailData := domain.BookingReceivedMailData{
		CustomerName: apt.CustomerName,
		Stylist:      apt.BarberName,
		Service:      apt.Service,
		Date:         apt.Date,
		Time:         apt.Time,
		Price:        apt.Price,
		BookingRef:   bookingRef,
	}

	// the booking is already stored; a mail failure must not fail the request
	if err := h.publishMail(domain.MailMessage{
		Type: "booking_received",
		To:   h.config.Salon.NotifyEmail,
		Data: mailData,
	}); err != nil {
		slog.Error("failed to queue booking notification", "bookingRef", bookingRef, "error", err)
	}
	if apt.CustomerEmail != "" {
		if err := h.publishMail(domain.MailMessage{
			Type: "booking_received",
			To:   apt.CustomerEmail,
			Data: mailData,
		}); err != nil {
			slog.Error("failed to queue booking confirmation", "bookingRef", bookingRef, "error", err)
		}
	}

	h.successResponse(w, r, "booking received", struct {
		Appointment *domain.Appointment `json:"appointment"`
		BookingRef  string              `json:"bookingRef"`
	}{Appointment: apt, BookingRef: bookingRef})
}
