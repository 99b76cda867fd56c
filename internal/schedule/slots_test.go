package schedule

import (
	"testing"
	"time"
)

func TestMinutesFromLabel(t *testing.T) {
	cases := []struct {
		label string
		want  int
	}{
		{"10:00 AM", 600},
		{"12:00 PM", 720},
		{"12:45 PM", 765},
		{"1:00 PM", 780},
		{"2:15 PM", 855},
		{"8:00 PM", 1200},
	}

	for _, c := range cases {
		got, err := MinutesFromLabel(c.label)
		if err != nil {
			t.Fatalf("MinutesFromLabel(%q) error: %v", c.label, err)
		}
		if got != c.want {
			t.Fatalf("MinutesFromLabel(%q) = %d, want %d", c.label, got, c.want)
		}
		if back := LabelFromMinutes(got); back != c.label {
			t.Fatalf("LabelFromMinutes(%d) = %q, want %q", got, back, c.label)
		}
	}
}

func TestMinutesFromLabel_Invalid(t *testing.T) {
	for _, label := range []string{"", "25:00 PM", "2pm", "14:00"} {
		if _, err := MinutesFromLabel(label); err == nil {
			t.Fatalf("MinutesFromLabel(%q) expected error", label)
		}
	}
}

func TestSlotsForDate_SundayWindow(t *testing.T) {
	// 2025-03-09 is a Sunday.
	sunday := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	slots := SlotsForDate(sunday, 15)

	if len(slots) == 0 {
		t.Fatal("expected slots")
	}
	if slots[0] != "1:00 PM" {
		t.Fatalf("first slot = %q, want %q", slots[0], "1:00 PM")
	}
	if slots[len(slots)-1] != "8:00 PM" {
		t.Fatalf("last slot = %q, want %q", slots[len(slots)-1], "8:00 PM")
	}
	// 1:00 PM through 8:00 PM inclusive at 15 minutes is 29 slots.
	if len(slots) != 29 {
		t.Fatalf("len(slots) = %d, want 29", len(slots))
	}
}

func TestSlotsForDate_WeekdayWindow(t *testing.T) {
	// Monday through Saturday share the 10:00 AM - 7:00 PM window.
	for day := 10; day <= 15; day++ {
		date := time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC)
		slots := SlotsForDate(date, 15)

		if slots[0] != "10:00 AM" {
			t.Fatalf("%s: first slot = %q, want %q", date.Weekday(), slots[0], "10:00 AM")
		}
		if slots[len(slots)-1] != "7:00 PM" {
			t.Fatalf("%s: last slot = %q, want %q", date.Weekday(), slots[len(slots)-1], "7:00 PM")
		}
		// 10:00 AM through 7:00 PM inclusive at 15 minutes is 37 slots,
		// so nothing after 7:00 PM is ever offered on a weekday.
		if len(slots) != 37 {
			t.Fatalf("%s: len(slots) = %d, want 37", date.Weekday(), len(slots))
		}
	}
}

func TestSlotsForDate_ZeroDateReturnsUniverse(t *testing.T) {
	slots := SlotsForDate(time.Time{}, 15)

	if slots[0] != "10:00 AM" || slots[len(slots)-1] != "8:00 PM" {
		t.Fatalf("universe = %q .. %q, want 10:00 AM .. 8:00 PM", slots[0], slots[len(slots)-1])
	}
	if len(slots) != 41 {
		t.Fatalf("len(slots) = %d, want 41", len(slots))
	}
}

func TestStaffByName(t *testing.T) {
	for _, name := range []string{"Jake", "Maricon"} {
		staff, ok := StaffByName(name)
		if !ok {
			t.Fatalf("StaffByName(%q) not found", name)
		}
		if staff.SlotGranularity != 15 {
			t.Fatalf("%s granularity = %d, want 15", name, staff.SlotGranularity)
		}
		if len(staff.Services) != 11 {
			t.Fatalf("%s services = %d, want 11", name, len(staff.Services))
		}
	}

	if _, ok := StaffByName("Nobody"); ok {
		t.Fatal("StaffByName(\"Nobody\") expected not found")
	}
}
