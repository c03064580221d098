package appointmentRepo

import (
	"context"
	"errors"
	"time"

	"caregrid/models"
)

// ErrBookingConflict is returned when an insert would overlap an existing
// booked appointment for the same doctor.
var ErrBookingConflict = errors.New("appointment overlaps an existing booking")

// AppointmentRepository defines persistence for appointments.
type AppointmentRepository interface {
	// FindBookedInWindow returns booked appointments for the doctor whose
	// [start, end] interval intersects [from, to], sorted by start ascending.
	FindBookedInWindow(doctorID string, from, to time.Time) ([]models.Appointment, error)
	// CreateIfFree inserts the appointment only if no booked appointment for
	// the same doctor overlaps its [Start, End) interval. The overlap re-check
	// and the insert run inside one transaction; concurrent conflicting
	// bookings cannot both succeed. Returns ErrBookingConflict on overlap.
	CreateIfFree(ctx context.Context, appointment *models.Appointment) error
	// ListByPatient returns all appointments of the patient sorted by start
	// descending.
	ListByPatient(patientID string) ([]models.Appointment, error)
	// GetByID returns the appointment, or (nil, nil) when it does not exist.
	GetByID(id string) (*models.Appointment, error)
	// MarkReminderSent stamps the appointment with the reminder delivery time.
	MarkReminderSent(id string, at time.Time) error
}
