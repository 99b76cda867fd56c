package schedule

import (
	"slices"
	"testing"
	"time"

	"github.com/torioweb/cj-hair-lounge/backend/internal/domain"
)

func jake(t *testing.T) *StaffConfig {
	t.Helper()
	staff, ok := StaffByName("Jake")
	if !ok {
		t.Fatal("Jake not in catalog")
	}
	return staff
}

func TestAvailableSlots_FullDayUnavailable(t *testing.T) {
	// 2025-03-10 is a Monday.
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	booked := []domain.BlockingSlot{{Time: "2:00 PM", Duration: 45}}
	slots, err := jake(t).AvailableSlots(date, now, 30, booked, DayBlocks{FullDay: true})
	if err != nil {
		t.Fatalf("AvailableSlots error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("full-day unavailable: got %d slots, want 0", len(slots))
	}
}

func TestAvailableSlots_BookingBlocksContiguousRun(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	// A confirmed 45-minute appointment at 2:00 PM on a 15-minute grid
	// occupies 2:00, 2:15 and 2:30; 2:45 stays open.
	booked := []domain.BlockingSlot{{Time: "2:00 PM", Duration: 45}}
	slots, err := jake(t).AvailableSlots(date, now, 15, booked, DayBlocks{})
	if err != nil {
		t.Fatalf("AvailableSlots error: %v", err)
	}

	for _, label := range []string{"2:00 PM", "2:15 PM", "2:30 PM"} {
		if slices.Contains(slots, label) {
			t.Fatalf("%s offered, want blocked", label)
		}
	}
	if !slices.Contains(slots, "2:45 PM") {
		t.Fatal("2:45 PM not offered, want open")
	}
	if !slices.Contains(slots, "1:45 PM") {
		t.Fatal("1:45 PM not offered, want open")
	}
}

func TestAvailableSlots_ProspectiveDurationReservesRun(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	// Booking a 45-minute service must not be offered a start whose run
	// would collide with the existing 2:00 PM appointment.
	booked := []domain.BlockingSlot{{Time: "2:00 PM", Duration: 45}}
	slots, err := jake(t).AvailableSlots(date, now, 45, booked, DayBlocks{})
	if err != nil {
		t.Fatalf("AvailableSlots error: %v", err)
	}

	for _, label := range []string{"1:30 PM", "1:45 PM", "2:00 PM", "2:30 PM"} {
		if slices.Contains(slots, label) {
			t.Fatalf("%s offered, want blocked (run collides)", label)
		}
	}
	if !slices.Contains(slots, "1:15 PM") {
		t.Fatal("1:15 PM not offered, want open (run ends before 2:00 PM)")
	}
	if !slices.Contains(slots, "2:45 PM") {
		t.Fatal("2:45 PM not offered, want open")
	}
}

func TestAvailableSlots_ExplicitBlockedSlots(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	blocks := DayBlocks{Slots: []string{"11:00 AM", "11:15 AM"}}
	slots, err := jake(t).AvailableSlots(date, now, 15, nil, blocks)
	if err != nil {
		t.Fatalf("AvailableSlots error: %v", err)
	}

	if slices.Contains(slots, "11:00 AM") || slices.Contains(slots, "11:15 AM") {
		t.Fatal("blocked slots offered")
	}
	if !slices.Contains(slots, "10:45 AM") || !slices.Contains(slots, "11:30 AM") {
		t.Fatal("neighbouring slots missing")
	}
}

func TestAvailableSlots_SameDayCutoff(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 10, 14, 20, 0, 0, time.UTC)

	slots, err := jake(t).AvailableSlots(date, now, 15, nil, DayBlocks{})
	if err != nil {
		t.Fatalf("AvailableSlots error: %v", err)
	}

	if slices.Contains(slots, "2:00 PM") || slices.Contains(slots, "2:15 PM") {
		t.Fatal("past slots offered on same day")
	}
	if !slices.Contains(slots, "2:30 PM") {
		t.Fatal("2:30 PM not offered, want eligible")
	}
	if slots[0] != "2:30 PM" {
		t.Fatalf("first offered slot = %q, want %q", slots[0], "2:30 PM")
	}
}

func TestAvailableSlots_OtherDayIgnoresClock(t *testing.T) {
	date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)

	slots, err := jake(t).AvailableSlots(date, now, 15, nil, DayBlocks{})
	if err != nil {
		t.Fatalf("AvailableSlots error: %v", err)
	}
	if slots[0] != "10:00 AM" {
		t.Fatalf("first slot = %q, want full window from 10:00 AM", slots[0])
	}
}

func TestAvailableSlots_LongServiceNearClose(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	// A 240-minute rebond needs 16 consecutive grid entries; nothing later
	// than 4:15 PM can hold the run inside the 8:00 PM universe.
	slots, err := jake(t).AvailableSlots(date, now, 240, nil, DayBlocks{})
	if err != nil {
		t.Fatalf("AvailableSlots error: %v", err)
	}
	if last := slots[len(slots)-1]; last != "4:15 PM" {
		t.Fatalf("last offered = %q, want %q", last, "4:15 PM")
	}
}

func TestSlotsNeeded(t *testing.T) {
	cases := []struct {
		duration, granularity, want int
	}{
		{15, 15, 1},
		{30, 15, 2},
		{45, 15, 3},
		{50, 15, 4},
		{240, 15, 16},
		{0, 15, 1},
		{20, 20, 1},
	}
	for _, c := range cases {
		if got := slotsNeeded(c.duration, c.granularity); got != c.want {
			t.Fatalf("slotsNeeded(%d, %d) = %d, want %d", c.duration, c.granularity, got, c.want)
		}
	}
}
