package scheduling

import (
	"context"
	"errors"
	"strings"
	"time"

	appointmentRepo "caregrid/database/repository/appointment"
	"caregrid/models"
	"caregrid/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookAppointment runs the fail-fast booking pipeline: input validation,
// patient and schedule existence, template-slot fit, then the transactional
// conflict-checked insert.
func (s *DefaultSchedulingService) BookAppointment(ctx context.Context, actor models.Actor, patientID string, req models.BookingRequest) (*models.Appointment, error) {
	if strings.TrimSpace(req.DoctorID) == "" {
		return nil, newValidationError("doctorId is required")
	}

	if strings.TrimSpace(req.AppointmentDateTime) == "" {
		return nil, newValidationError("appointmentDateTime is required as an ISO date-time string")
	}
	start, err := time.Parse(time.RFC3339, req.AppointmentDateTime)
	if err != nil {
		return nil, newValidationError("appointmentDateTime must be a valid ISO date-time string")
	}

	duration := models.DefaultAppointmentMinutes
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}
	if duration < models.MinAppointmentMinutes || duration > models.MaxAppointmentMinutes {
		return nil, newValidationError("durationMinutes must be an integer between 5 and 480")
	}

	end := start.Add(time.Duration(duration) * time.Minute)
	if !sameUTCDay(start, end) {
		return nil, newValidationError("Appointment cannot cross midnight; split into separate appointments")
	}

	if !start.After(s.now()) {
		return nil, newValidationError("appointmentDateTime must be in the future")
	}

	source := models.ResolveAuditSource(req.Source, models.SourceManual)
	if source == "" {
		return nil, newValidationError("source must be one of manual, device, api")
	}

	patient, err := s.Patients.GetByID(patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, newPatientNotFoundError()
	}

	schedule, err := s.Schedules.GetByDoctorID(req.DoctorID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, newScheduleNotFoundError()
	}

	slots := daySlots(schedule, int(start.UTC().Weekday()))
	startMinutes := minutesOfDayUTC(start)
	endMinutes := minutesOfDayUTC(end)

	// The whole request must fit inside one contiguous template slot.
	fits := false
	for _, slot := range slots {
		slotStart, okStart := ParseClockTime(slot.StartTime)
		slotEnd, okEnd := ParseClockTime(slot.EndTime)
		if okStart && okEnd && startMinutes >= slotStart && endMinutes <= slotEnd {
			fits = true
			break
		}
	}
	if !fits {
		return nil, newDoctorUnavailableError("Requested time is outside of the doctor schedule for that day")
	}

	doctorName := strings.TrimSpace(req.DoctorName)
	if doctorName == "" {
		doctorName = schedule.DoctorName
	}

	appointment := &models.Appointment{
		ID:              uuid.NewString(),
		PatientID:       patientID,
		DoctorID:        req.DoctorID,
		DoctorName:      doctorName,
		Start:           start,
		End:             end,
		DurationMinutes: duration,
		Reason:          strings.TrimSpace(req.Reason),
		Status:          models.StatusBooked,
		BookedBy:        actor.UserID,
		BookedByRole:    actor.Role,
		Source:          source,
	}

	if err := s.Appointments.CreateIfFree(ctx, appointment); err != nil {
		if errors.Is(err, appointmentRepo.ErrBookingConflict) {
			return nil, newDoctorUnavailableError("Doctor is not free at the requested time, please choose another slot")
		}
		return nil, err
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleAppointmentReminder(appointment); err != nil {
			utils.GetLogger().Warn("failed to schedule appointment reminder",
				zap.String("appointmentId", appointment.ID), zap.Error(err))
		}
	}

	return appointment, nil
}

// PatientAppointments lists a patient's appointments, newest first.
func (s *DefaultSchedulingService) PatientAppointments(patientID string) ([]models.Appointment, error) {
	patient, err := s.Patients.GetByID(patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, newPatientNotFoundError()
	}
	return s.Appointments.ListByPatient(patientID)
}

// sameUTCDay reports whether both instants fall on the same UTC calendar day.
func sameUTCDay(a, b time.Time) bool {
	aYear, aMonth, aDay := a.UTC().Date()
	bYear, bMonth, bDay := b.UTC().Date()
	return aYear == bYear && aMonth == bMonth && aDay == bDay
}
