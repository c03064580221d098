package scheduling

import (
	"testing"

	"caregrid/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		input   string
		minutes int
		ok      bool
	}{
		{"00:00", 0, true},
		{"09:00", 540, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"9:00", 0, false},
		{"09:60", 0, false},
		{"09-00", 0, false},
		{"0900", 0, false},
		{"", 0, false},
		{" 09:00", 0, false},
		{"09:00 ", 0, false},
	}

	for _, tc := range cases {
		minutes, ok := ParseClockTime(tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
		if tc.ok {
			assert.Equal(t, tc.minutes, minutes, "input %q", tc.input)
		}
	}
}

func TestDefaultDaySlots(t *testing.T) {
	slots := DefaultDaySlots()

	require.Len(t, slots, 16)
	assert.Equal(t, models.ScheduleSlot{StartTime: "09:00", EndTime: "09:30"}, slots[0])
	assert.Equal(t, models.ScheduleSlot{StartTime: "09:30", EndTime: "10:00"}, slots[1])
	assert.Equal(t, models.ScheduleSlot{StartTime: "16:30", EndTime: "17:00"}, slots[15])

	// The grid itself must be a valid day template.
	valid := validWeeklyAvailability([]models.DayAvailability{{DayOfWeek: 1, Slots: slots}})
	assert.True(t, valid)
}

func TestValidWeeklyAvailability(t *testing.T) {
	day := func(dow int, slots ...models.ScheduleSlot) models.DayAvailability {
		return models.DayAvailability{DayOfWeek: dow, Slots: slots}
	}
	slot := func(start, end string) models.ScheduleSlot {
		return models.ScheduleSlot{StartTime: start, EndTime: end}
	}

	t.Run("accepts disjoint sorted slots", func(t *testing.T) {
		assert.True(t, validWeeklyAvailability([]models.DayAvailability{
			day(1, slot("09:00", "09:30"), slot("09:30", "10:00")),
			day(3, slot("14:00", "16:00")),
		}))
	})

	t.Run("accepts unsorted disjoint slots", func(t *testing.T) {
		assert.True(t, validWeeklyAvailability([]models.DayAvailability{
			day(1, slot("10:00", "11:00"), slot("08:00", "09:00")),
		}))
	})

	t.Run("rejects empty template", func(t *testing.T) {
		assert.False(t, validWeeklyAvailability(nil))
		assert.False(t, validWeeklyAvailability([]models.DayAvailability{}))
	})

	t.Run("rejects duplicate day", func(t *testing.T) {
		assert.False(t, validWeeklyAvailability([]models.DayAvailability{
			day(1, slot("09:00", "10:00")),
			day(1, slot("11:00", "12:00")),
		}))
	})

	t.Run("rejects day out of range", func(t *testing.T) {
		assert.False(t, validWeeklyAvailability([]models.DayAvailability{day(7, slot("09:00", "10:00"))}))
		assert.False(t, validWeeklyAvailability([]models.DayAvailability{day(-1, slot("09:00", "10:00"))}))
	})

	t.Run("rejects day without slots", func(t *testing.T) {
		assert.False(t, validWeeklyAvailability([]models.DayAvailability{day(2)}))
	})

	t.Run("rejects start not before end", func(t *testing.T) {
		assert.False(t, validWeeklyAvailability([]models.DayAvailability{day(2, slot("10:00", "10:00"))}))
		assert.False(t, validWeeklyAvailability([]models.DayAvailability{day(2, slot("10:00", "09:00"))}))
	})

	t.Run("rejects overlapping slots", func(t *testing.T) {
		assert.False(t, validWeeklyAvailability([]models.DayAvailability{
			day(2, slot("09:00", "10:00"), slot("09:30", "10:30")),
		}))
	})

	t.Run("rejects malformed times", func(t *testing.T) {
		assert.False(t, validWeeklyAvailability([]models.DayAvailability{day(2, slot("9:00", "10:00"))}))
		assert.False(t, validWeeklyAvailability([]models.DayAvailability{day(2, slot("09:00", "25:00"))}))
	})

	t.Run("one bad day rejects the whole payload", func(t *testing.T) {
		assert.False(t, validWeeklyAvailability([]models.DayAvailability{
			day(1, slot("09:00", "10:00")),
			day(2, slot("11:00", "10:00")),
		}))
	})
}

func TestOverlapsMinutes(t *testing.T) {
	// Half-open intervals: touching endpoints do not overlap.
	assert.False(t, overlapsMinutes(540, 570, 570, 600))
	assert.False(t, overlapsMinutes(570, 600, 540, 570))
	assert.True(t, overlapsMinutes(540, 571, 570, 600))
	assert.True(t, overlapsMinutes(555, 585, 540, 570))
	assert.True(t, overlapsMinutes(500, 700, 540, 570))
}

func TestDaySlots(t *testing.T) {
	schedule := &models.DoctorSchedule{
		WeeklyAvailability: []models.DayAvailability{
			{DayOfWeek: 1, Slots: []models.ScheduleSlot{{StartTime: "09:00", EndTime: "12:00"}}},
		},
	}

	t.Run("uses stored entry when present", func(t *testing.T) {
		slots := daySlots(schedule, 1)
		require.Len(t, slots, 1)
		assert.Equal(t, "09:00", slots[0].StartTime)
	})

	t.Run("falls back to default grid", func(t *testing.T) {
		slots := daySlots(schedule, 2)
		assert.Len(t, slots, 16)
	})
}
