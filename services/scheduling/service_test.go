package scheduling

import (
	"context"
	"sync"
	"time"

	appointmentRepo "caregrid/database/repository/appointment"
	"caregrid/models"
)

// In-memory repository fakes used across the scheduling tests.

type fakeScheduleRepo struct {
	schedules map[string]*models.DoctorSchedule
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: make(map[string]*models.DoctorSchedule)}
}

func (f *fakeScheduleRepo) GetByDoctorID(doctorID string) (*models.DoctorSchedule, error) {
	schedule, ok := f.schedules[doctorID]
	if !ok {
		return nil, nil
	}
	copied := *schedule
	return &copied, nil
}

func (f *fakeScheduleRepo) Upsert(schedule *models.DoctorSchedule) (*models.DoctorSchedule, error) {
	now := time.Now().UTC()
	stored := *schedule
	stored.UpdatedAt = now
	if existing, ok := f.schedules[schedule.DoctorID]; ok {
		// CreatedBy and CreatedAt survive updates.
		stored.CreatedBy = existing.CreatedBy
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.CreatedAt = now
	}
	f.schedules[schedule.DoctorID] = &stored
	copied := stored
	return &copied, nil
}

type fakeAppointmentRepo struct {
	mu           sync.Mutex
	appointments []models.Appointment
}

func (f *fakeAppointmentRepo) FindBookedInWindow(doctorID string, from, to time.Time) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []models.Appointment
	for _, a := range f.appointments {
		if a.DoctorID == doctorID && a.Status == models.StatusBooked &&
			!a.Start.After(to) && !a.End.Before(from) {
			result = append(result, a)
		}
	}
	for i := 1; i < len(result); i++ {
		for j := i; j > 0 && result[j].Start.Before(result[j-1].Start); j-- {
			result[j], result[j-1] = result[j-1], result[j]
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepo) CreateIfFree(_ context.Context, appointment *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, a := range f.appointments {
		if a.DoctorID == appointment.DoctorID && a.Status == models.StatusBooked &&
			a.Start.Before(appointment.End) && a.End.After(appointment.Start) {
			return appointmentRepo.ErrBookingConflict
		}
	}
	now := time.Now().UTC()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now
	f.appointments = append(f.appointments, *appointment)
	return nil
}

func (f *fakeAppointmentRepo) ListByPatient(patientID string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []models.Appointment
	for _, a := range f.appointments {
		if a.PatientID == patientID {
			result = append(result, a)
		}
	}
	for i := 1; i < len(result); i++ {
		for j := i; j > 0 && result[j].Start.After(result[j-1].Start); j-- {
			result[j], result[j-1] = result[j-1], result[j]
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.appointments {
		if f.appointments[i].ID == id {
			copied := f.appointments[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) MarkReminderSent(id string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.appointments {
		if f.appointments[i].ID == id {
			stamped := at
			f.appointments[i].ReminderSentAt = &stamped
			return nil
		}
	}
	return nil
}

type fakePatientRepo struct {
	patients map[string]*models.Patient
}

func newFakePatientRepo(ids ...string) *fakePatientRepo {
	repo := &fakePatientRepo{patients: make(map[string]*models.Patient)}
	for _, id := range ids {
		repo.patients[id] = &models.Patient{ID: id, FirstName: "Test", LastName: "Patient"}
	}
	return repo
}

func (f *fakePatientRepo) GetByID(id string) (*models.Patient, error) {
	patient, ok := f.patients[id]
	if !ok {
		return nil, nil
	}
	copied := *patient
	return &copied, nil
}

func (f *fakePatientRepo) GetByNationalIDHash(string) (*models.Patient, error) { return nil, nil }

func (f *fakePatientRepo) GetAll() ([]models.Patient, error) { return nil, nil }

func (f *fakePatientRepo) Create(*models.Patient) error { return nil }

func (f *fakePatientRepo) NextPatientID() (string, error) { return "1", nil }

// newTestService builds a scheduling service over the in-memory fakes with a
// fixed clock.
func newTestService(now time.Time, patientIDs ...string) (*DefaultSchedulingService, *fakeScheduleRepo, *fakeAppointmentRepo) {
	schedules := newFakeScheduleRepo()
	appointments := &fakeAppointmentRepo{}
	svc := &DefaultSchedulingService{
		Schedules:    schedules,
		Appointments: appointments,
		Patients:     newFakePatientRepo(patientIDs...),
		Now:          func() time.Time { return now },
	}
	return svc, schedules, appointments
}
