package schedule

import (
	"time"

	"github.com/torioweb/cj-hair-lounge/backend/internal/domain"
)

// DayBlocks carries the stylist's declared unavailability for one date.
type DayBlocks struct {
	FullDay bool
	Slots   []string
}

// AvailableSlots returns the slot labels a customer may book for the stylist
// on date, in calendar order.
//
// A slot is offered when every slot the prospective service would occupy
// (ceil(serviceDuration/granularity) consecutive grid entries) is free of
// existing pending/confirmed bookings and declared unavailability, and the
// start is not in the past when date is today. Existing bookings are expanded
// the same way from their duration snapshots, so a 45-minute appointment on a
// 15-minute grid blocks three slots, not one.
func (c *StaffConfig) AvailableSlots(date time.Time, now time.Time, serviceDuration int, booked []domain.BlockingSlot, blocks DayBlocks) ([]string, error) {
	if blocks.FullDay {
		return []string{}, nil
	}

	gran := c.SlotGranularity
	window := WindowForWeekday(date.Weekday())

	taken := make(map[int]bool)
	for _, b := range booked {
		start, err := MinutesFromLabel(b.Time)
		if err != nil {
			return nil, err
		}
		for i := 0; i < slotsNeeded(int(b.Duration), gran); i++ {
			m := start + i*gran
			if m > universeClose {
				break
			}
			taken[m] = true
		}
	}
	for _, label := range blocks.Slots {
		m, err := MinutesFromLabel(label)
		if err != nil {
			return nil, err
		}
		taken[m] = true
	}

	sameDay := date.Year() == now.Year() && date.YearDay() == now.YearDay()
	nowMinutes := now.Hour()*60 + now.Minute()
	need := slotsNeeded(serviceDuration, gran)

	offered := make([]string, 0)
	for m := window.Open; m <= window.Close; m += gran {
		if sameDay && m < nowMinutes {
			continue
		}
		free := true
		for i := 0; i < need; i++ {
			t := m + i*gran
			if t > universeClose || taken[t] {
				free = false
				break
			}
		}
		if free {
			offered = append(offered, LabelFromMinutes(m))
		}
	}

	return offered, nil
}

func slotsNeeded(durationMinutes, granularityMinutes int) int {
	if durationMinutes <= granularityMinutes {
		return 1
	}
	return (durationMinutes + granularityMinutes - 1) / granularityMinutes
}
