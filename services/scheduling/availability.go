package scheduling

import (
	"regexp"
	"strings"
	"time"

	"caregrid/models"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Availability computes a doctor's free slots for one date by subtracting
// booked appointments from the day's template (or the default grid).
func (s *DefaultSchedulingService) Availability(doctorID, date string) (*models.DoctorAvailability, error) {
	if strings.TrimSpace(date) == "" {
		return nil, newValidationError("date query parameter is required in YYYY-MM-DD format")
	}
	if !dateRe.MatchString(date) {
		return nil, newValidationError("date must be in YYYY-MM-DD format")
	}
	dayStart, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, newValidationError("date must be in YYYY-MM-DD format")
	}

	schedule, err := s.Schedules.GetByDoctorID(doctorID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, newScheduleNotFoundError()
	}

	dayOfWeek := int(dayStart.UTC().Weekday())
	slots := daySlots(schedule, dayOfWeek)

	dayEnd := dayStart.Add(24*time.Hour - time.Millisecond)
	appointments, err := s.Appointments.FindBookedInWindow(doctorID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	freeSlots := make([]models.ScheduleSlot, 0, len(slots))
	for _, slot := range slots {
		slotStart, okStart := ParseClockTime(slot.StartTime)
		slotEnd, okEnd := ParseClockTime(slot.EndTime)
		if !okStart || !okEnd {
			continue
		}

		taken := false
		for _, appointment := range appointments {
			if overlapsMinutes(minutesOfDayUTC(appointment.Start), minutesOfDayUTC(appointment.End), slotStart, slotEnd) {
				taken = true
				break
			}
		}
		if !taken {
			freeSlots = append(freeSlots, slot)
		}
	}

	booked := make([]models.BookedSlot, 0, len(appointments))
	for _, appointment := range appointments {
		booked = append(booked, models.BookedSlot{
			AppointmentID: appointment.ID,
			Start:         appointment.Start,
			End:           appointment.End,
			PatientID:     appointment.PatientID,
		})
	}

	return &models.DoctorAvailability{
		DoctorID:       doctorID,
		Date:           date,
		DayOfWeek:      dayOfWeek,
		AvailableSlots: freeSlots,
		BookedSlots:    booked,
	}, nil
}
