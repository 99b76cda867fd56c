package seed

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/torioweb/cj-hair-lounge/backend/internal/domain"
	"github.com/torioweb/cj-hair-lounge/backend/internal/repository"
	"github.com/torioweb/cj-hair-lounge/backend/internal/schedule"
	"github.com/torioweb/cj-hair-lounge/backend/internal/utils"
)

var galleryImages = []domain.GalleryImage{
	{ImageURL: "https://images.cjhairlounge.ph/gallery/balayage-01.jpg", Title: "Balayage", Description: "Soft balayage with face framing highlights", DisplayOrder: 1},
	{ImageURL: "https://images.cjhairlounge.ph/gallery/rebond-01.jpg", Title: "One Step Rebond", Description: "Rebond with hair color and hair mask", DisplayOrder: 2},
	{ImageURL: "https://images.cjhairlounge.ph/gallery/brazilian-01.jpg", Title: "Brazilian Blow Out", Description: "Brazilian blow out with color", DisplayOrder: 3},
	{ImageURL: "https://images.cjhairlounge.ph/gallery/color-01.jpg", Title: "Ash Gray Color", Description: "Full head ash gray with toner", DisplayOrder: 4},
	{ImageURL: "https://images.cjhairlounge.ph/gallery/cut-01.jpg", Title: "Layered Cut", Description: "Layered cut with curtain bangs", DisplayOrder: 5},
	{ImageURL: "https://images.cjhairlounge.ph/gallery/keratin-01.jpg", Title: "Keratin Treatment", Description: "Keratin and Brazilian treatment", DisplayOrder: 6},
}

func SeedGallery(r *repository.Repository) {
	cnt := 0
	for i := range galleryImages {
		img := galleryImages[i]
		if err := r.CreateGalleryImage(&img); err != nil {
			slog.Error("failed to insert gallery image", "title", img.Title, "error", err)
			continue
		}
		cnt++
	}

	slog.Info("seeded gallery images", "count", cnt)
}

// SeedAppointments fills the next `days` days with a few random demo bookings
// per stylist. Slot collisions are expected from the random picks; the
// uniqueness guard rejects them and the seed just moves on.
func SeedAppointments(r *repository.Repository, days int, loc *time.Location) {
	staff := schedule.Staff()
	now := time.Now().In(loc)

	cnt := 0
	for d := 0; d < days; d++ {
		date := now.AddDate(0, 0, d)
		dateStr := date.Format("2006-01-02")

		for i := range staff {
			s := &staff[i]
			slots := schedule.SlotsForDate(date, s.SlotGranularity)

			for j := 0; j < rand.Intn(2)+2; j++ {
				service := s.Services[rand.Intn(len(s.Services))]
				apt := &domain.Appointment{
					BarberName:    s.Name,
					CustomerName:  utils.GenerateRandomFullName(),
					CustomerPhone: utils.GenerateRandomPhoneNumber(),
					Service:       service.Name,
					Date:          dateStr,
					Time:          slots[rand.Intn(len(slots))],
					Status:        utils.GenerateRandomStatus(),
					Price:         service.Price,
					Duration:      service.Duration,
				}

				if err := r.CreateAppointment(apt); err != nil {
					continue
				}
				cnt++
			}
		}
	}

	slog.Info("seeded appointments", "count", cnt)
}
