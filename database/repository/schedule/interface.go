package scheduleRepo

import "caregrid/models"

// ScheduleRepository defines persistence for doctor weekly-availability
// templates.
type ScheduleRepository interface {
	// GetByDoctorID returns the stored schedule, or (nil, nil) when the doctor
	// has none.
	GetByDoctorID(doctorID string) (*models.DoctorSchedule, error)
	// Upsert writes the schedule keyed by doctorId. CreatedBy is only set on
	// first insert; UpdatedBy and Source are always set. Returns the stored
	// document.
	Upsert(schedule *models.DoctorSchedule) (*models.DoctorSchedule, error)
}
