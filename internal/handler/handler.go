package handler

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/torioweb/cj-hair-lounge/backend/internal/config"
	"github.com/torioweb/cj-hair-lounge/backend/internal/domain"
	"github.com/torioweb/cj-hair-lounge/backend/internal/notify"
	"github.com/torioweb/cj-hair-lounge/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client
	hub         *notify.Hub
	location    *time.Location

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client, hub *notify.Hub) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}
	if err := registerCustomValidators(validate, trans); err != nil {
		return nil, err
	}

	// all same-day cutoffs and date checks happen in salon local time
	location, err := time.LoadLocation(cfg.Salon.Timezone)
	if err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,
		hub:         hub,
		location:    location,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// staff/admin authentication
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// public booking widget surface
	h.Mux.Get("/catalog/stylists", h.GetStylists)
	h.Mux.Get("/gallery", h.GetGalleryImages)
	h.Mux.Get("/availability", h.GetAvailability)
	h.Mux.Post("/bookings", h.CreateBooking)

	// everything below requires a logged-in staff member
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/admin/bookings", func(r chi.Router) {
			r.Get("/", h.GetAllAppointments)
			r.Get("/events", h.AppointmentEvents)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.appointmentCtx)
				r.Patch("/status", h.UpdateAppointmentStatus)
				r.Patch("/notes", h.UpdateAppointmentNotes)
			})
		})

		r.Route("/admin/unavailability", func(r chi.Router) {
			r.Get("/", h.GetUnavailability)
			r.Put("/", h.SetUnavailability)
			r.Delete("/{id}", h.DeleteUnavailability)
		})

		r.Route("/admin/gallery", func(r chi.Router) {
			r.Post("/", h.AddGalleryImage)
			r.Delete("/{id}", h.DeleteGalleryImage)
		})

		r.Route("/admin/users", func(r chi.Router) {
			r.Get("/", h.GetAllUserInfo)
			r.With(h.RequiredRole([]domain.Role{domain.RoleOwner})).Post("/", h.CreateUser)
		})
	})
}
