package scheduling

import (
	"fmt"
	"regexp"
	"sort"
	"time"

	"caregrid/models"
)

var clockTimeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ParseClockTime parses a strict HH:mm (00-23 hours, 00-59 minutes) value
// into minutes since midnight. The second return value reports success; any
// other input shape is a validation failure, not a panic.
func ParseClockTime(value string) (int, bool) {
	match := clockTimeRe.FindStringSubmatch(value)
	if match == nil {
		return 0, false
	}
	hours := int(match[1][0]-'0')*10 + int(match[1][1]-'0')
	minutes := int(match[2][0]-'0')*10 + int(match[2][1]-'0')
	return hours*60 + minutes, true
}

// minutesOfDayUTC projects an instant to minutes since midnight UTC.
func minutesOfDayUTC(t time.Time) int {
	utc := t.UTC()
	return utc.Hour()*60 + utc.Minute()
}

// overlapsMinutes reports half-open interval intersection of [aStart, aEnd)
// and [bStart, bEnd).
func overlapsMinutes(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// DefaultDaySlots returns the canonical fallback grid used when a doctor has
// no template entry for a day: every hour from 09:00 to 17:00 split into two
// 30-minute slots, 16 slots in total.
func DefaultDaySlots() []models.ScheduleSlot {
	slots := make([]models.ScheduleSlot, 0, 16)
	for hour := 9; hour < 17; hour++ {
		slots = append(slots,
			models.ScheduleSlot{
				StartTime: fmt.Sprintf("%02d:00", hour),
				EndTime:   fmt.Sprintf("%02d:30", hour),
			},
			models.ScheduleSlot{
				StartTime: fmt.Sprintf("%02d:30", hour),
				EndTime:   fmt.Sprintf("%02d:00", hour+1),
			},
		)
	}
	return slots
}

// validWeeklyAvailability reports whether a template write is acceptable:
// at least one day entry, each dayOfWeek in 0-6 and unique, each day holding
// at least one slot, every slot a strict HH:mm pair with start < end, and no
// two slots of a day overlapping once sorted by start. A single violation
// rejects the whole payload.
func validWeeklyAvailability(days []models.DayAvailability) bool {
	if len(days) == 0 {
		return false
	}

	usedDays := make(map[int]bool, len(days))
	for _, day := range days {
		if day.DayOfWeek < 0 || day.DayOfWeek > 6 || usedDays[day.DayOfWeek] {
			return false
		}
		usedDays[day.DayOfWeek] = true

		if len(day.Slots) == 0 {
			return false
		}

		type span struct{ start, end int }
		spans := make([]span, 0, len(day.Slots))
		for _, slot := range day.Slots {
			start, okStart := ParseClockTime(slot.StartTime)
			end, okEnd := ParseClockTime(slot.EndTime)
			if !okStart || !okEnd || start >= end {
				return false
			}
			spans = append(spans, span{start: start, end: end})
		}

		sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
		for i := 1; i < len(spans); i++ {
			if spans[i-1].end > spans[i].start {
				return false
			}
		}
	}

	return true
}

// daySlots picks the stored template slots for the given weekday, falling
// back to the default grid when the doctor has no entry for that day.
func daySlots(schedule *models.DoctorSchedule, dayOfWeek int) []models.ScheduleSlot {
	for _, day := range schedule.WeeklyAvailability {
		if day.DayOfWeek == dayOfWeek && len(day.Slots) > 0 {
			return day.Slots
		}
	}
	return DefaultDaySlots()
}
