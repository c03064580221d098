package scheduling

import (
	"testing"
	"time"

	"caregrid/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upsertReq() models.ScheduleUpsertRequest {
	return models.ScheduleUpsertRequest{
		DoctorName: "Dr. Achieng",
		Department: "Cardiology",
		WeeklyAvailability: []models.DayAvailability{
			{DayOfWeek: 1, Slots: []models.ScheduleSlot{{StartTime: "09:00", EndTime: "12:00"}}},
		},
	}
}

func TestUpsertSchedule(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	admin := models.Actor{UserID: "admin-1", Role: models.RoleAdmin}

	t.Run("admin writes any doctor", func(t *testing.T) {
		svc, _, _ := newTestService(now)
		schedule, err := svc.UpsertSchedule(admin, "doc-1", upsertReq())
		require.NoError(t, err)
		assert.Equal(t, "doc-1", schedule.DoctorID)
		assert.Equal(t, "Dr. Achieng", schedule.DoctorName)
		assert.Equal(t, "admin-1", schedule.CreatedBy)
		assert.Equal(t, "admin-1", schedule.UpdatedBy)
		assert.Equal(t, models.SourceManual, schedule.Source)
	})

	t.Run("doctor writes own schedule", func(t *testing.T) {
		svc, _, _ := newTestService(now)
		doctor := models.Actor{UserID: "doc-1", Role: models.RoleDoctor}
		schedule, err := svc.UpsertSchedule(doctor, "doc-1", upsertReq())
		require.NoError(t, err)
		assert.Equal(t, "doc-1", schedule.CreatedBy)
	})

	t.Run("doctor cannot write another doctor's schedule", func(t *testing.T) {
		svc, _, _ := newTestService(now)
		doctor := models.Actor{UserID: "doc-1", Role: models.RoleDoctor}
		_, err := svc.UpsertSchedule(doctor, "doc-2", upsertReq())
		requireServiceError(t, err, 403, "INSUFFICIENT_ROLE")
	})

	t.Run("missing doctorId", func(t *testing.T) {
		svc, _, _ := newTestService(now)
		_, err := svc.UpsertSchedule(admin, "  ", upsertReq())
		requireServiceError(t, err, 400, "VALIDATION_ERROR")
	})

	t.Run("invalid weekly availability", func(t *testing.T) {
		svc, _, _ := newTestService(now)
		req := upsertReq()
		req.WeeklyAvailability = append(req.WeeklyAvailability, models.DayAvailability{
			DayOfWeek: 1,
			Slots:     []models.ScheduleSlot{{StartTime: "13:00", EndTime: "14:00"}},
		})
		_, err := svc.UpsertSchedule(admin, "doc-1", req)
		requireServiceError(t, err, 400, "VALIDATION_ERROR")
	})

	t.Run("unknown source", func(t *testing.T) {
		svc, _, _ := newTestService(now)
		req := upsertReq()
		req.Source = "carrier-pigeon"
		_, err := svc.UpsertSchedule(admin, "doc-1", req)
		requireServiceError(t, err, 400, "VALIDATION_ERROR")
	})

	t.Run("update preserves createdBy and replaces the template", func(t *testing.T) {
		svc, _, _ := newTestService(now)
		_, err := svc.UpsertSchedule(admin, "doc-1", upsertReq())
		require.NoError(t, err)

		replacement := upsertReq()
		replacement.WeeklyAvailability = []models.DayAvailability{
			{DayOfWeek: 3, Slots: []models.ScheduleSlot{{StartTime: "10:00", EndTime: "11:00"}}},
		}
		other := models.Actor{UserID: "admin-2", Role: models.RoleAdmin}
		updated, err := svc.UpsertSchedule(other, "doc-1", replacement)
		require.NoError(t, err)

		assert.Equal(t, "admin-1", updated.CreatedBy)
		assert.Equal(t, "admin-2", updated.UpdatedBy)
		require.Len(t, updated.WeeklyAvailability, 1)
		assert.Equal(t, 3, updated.WeeklyAvailability[0].DayOfWeek)
	})
}

func TestGetSchedule(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	t.Run("404 when absent", func(t *testing.T) {
		svc, _, _ := newTestService(now)
		_, err := svc.GetSchedule("doc-1")
		requireServiceError(t, err, 404, "DOCTOR_SCHEDULE_NOT_FOUND")
	})

	t.Run("returns stored schedule", func(t *testing.T) {
		svc, schedules, _ := newTestService(now)
		schedules.schedules["doc-1"] = mondaySchedule()
		schedule, err := svc.GetSchedule("doc-1")
		require.NoError(t, err)
		assert.Equal(t, "doc-1", schedule.DoctorID)
	})
}
