package scheduling

import (
	"context"
	"time"

	appointmentRepo "caregrid/database/repository/appointment"
	patientRepo "caregrid/database/repository/patient"
	scheduleRepo "caregrid/database/repository/schedule"
	"caregrid/models"
)

// SchedulingService is the doctor-availability and appointment-booking core.
type SchedulingService interface {
	// UpsertSchedule validates and writes a doctor's weekly template. Doctors
	// may only write their own schedule; admins may write any.
	UpsertSchedule(actor models.Actor, doctorID string, req models.ScheduleUpsertRequest) (*models.DoctorSchedule, error)
	// GetSchedule returns a doctor's stored template.
	GetSchedule(doctorID string) (*models.DoctorSchedule, error)
	// Availability computes the free slots of a doctor on a YYYY-MM-DD date.
	Availability(doctorID, date string) (*models.DoctorAvailability, error)
	// BookAppointment validates and books an appointment for the patient.
	BookAppointment(ctx context.Context, actor models.Actor, patientID string, req models.BookingRequest) (*models.Appointment, error)
	// PatientAppointments lists a patient's appointments newest first.
	PatientAppointments(patientID string) ([]models.Appointment, error)
}

// ReminderScheduler enqueues a reminder task for a freshly booked appointment.
type ReminderScheduler interface {
	ScheduleAppointmentReminder(appointment *models.Appointment) error
}

// DefaultSchedulingService is the production implementation.
type DefaultSchedulingService struct {
	Schedules    scheduleRepo.ScheduleRepository
	Appointments appointmentRepo.AppointmentRepository
	Patients     patientRepo.PatientRepository
	// Reminders is optional; booking succeeds even when enqueueing fails.
	Reminders ReminderScheduler
	// Now is an injectable clock. Nil means time.Now.
	Now func() time.Time
}

func (s *DefaultSchedulingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
