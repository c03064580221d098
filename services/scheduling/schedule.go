package scheduling

import (
	"strings"

	"caregrid/models"
)

// UpsertSchedule validates the weekly template wholesale and writes it keyed
// by doctorId. The audit createdBy is only recorded on first creation.
func (s *DefaultSchedulingService) UpsertSchedule(actor models.Actor, doctorID string, req models.ScheduleUpsertRequest) (*models.DoctorSchedule, error) {
	if actor.Role == models.RoleDoctor && actor.UserID != doctorID {
		return nil, newInsufficientRoleError("Doctors can only manage their own schedule")
	}

	if strings.TrimSpace(doctorID) == "" {
		return nil, newValidationError("doctorId is required")
	}

	if !validWeeklyAvailability(req.WeeklyAvailability) {
		return nil, newValidationError("weeklyAvailability must contain unique dayOfWeek entries (0-6) with non-overlapping HH:mm slots")
	}

	source := models.ResolveAuditSource(req.Source, models.SourceManual)
	if source == "" {
		return nil, newValidationError("source must be one of manual, device, api")
	}

	schedule := &models.DoctorSchedule{
		DoctorID:           doctorID,
		DoctorName:         strings.TrimSpace(req.DoctorName),
		Department:         strings.TrimSpace(req.Department),
		WeeklyAvailability: req.WeeklyAvailability,
		CreatedBy:          actor.UserID,
		UpdatedBy:          actor.UserID,
		Source:             source,
	}

	return s.Schedules.Upsert(schedule)
}

// GetSchedule returns a doctor's stored weekly template.
func (s *DefaultSchedulingService) GetSchedule(doctorID string) (*models.DoctorSchedule, error) {
	schedule, err := s.Schedules.GetByDoctorID(doctorID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, newScheduleNotFoundError()
	}
	return schedule, nil
}
