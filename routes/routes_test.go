package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"caregrid/config"
	"caregrid/handlers"
	"caregrid/models"
	"caregrid/services/scheduling"
	"caregrid/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSchedulingService struct {
	bookedFor models.Actor
	err       error
}

func (s *stubSchedulingService) UpsertSchedule(actor models.Actor, doctorID string, req models.ScheduleUpsertRequest) (*models.DoctorSchedule, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.DoctorSchedule{DoctorID: doctorID, CreatedBy: actor.UserID, UpdatedBy: actor.UserID}, nil
}

func (s *stubSchedulingService) GetSchedule(doctorID string) (*models.DoctorSchedule, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.DoctorSchedule{DoctorID: doctorID}, nil
}

func (s *stubSchedulingService) Availability(doctorID, date string) (*models.DoctorAvailability, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.DoctorAvailability{DoctorID: doctorID, Date: date}, nil
}

func (s *stubSchedulingService) BookAppointment(_ context.Context, actor models.Actor, patientID string, req models.BookingRequest) (*models.Appointment, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.bookedFor = actor
	return &models.Appointment{ID: "appt-1", PatientID: patientID, DoctorID: req.DoctorID, Status: models.StatusBooked}, nil
}

func (s *stubSchedulingService) PatientAppointments(patientID string) ([]models.Appointment, error) {
	if s.err != nil {
		return nil, s.err
	}
	return nil, nil
}

type stubPatientService struct{}

func (s *stubPatientService) Register(actor models.Actor, req models.PatientRegistration, providedFields []string) (*models.Patient, error) {
	return &models.Patient{ID: "1000001", FirstName: req.FirstName, RegisteredBy: actor.UserID}, nil
}

func (s *stubPatientService) GetAll() ([]models.Patient, error) { return nil, nil }

func (s *stubPatientService) GetByID(id string) (*models.Patient, error) {
	return &models.Patient{ID: id}, nil
}

func newTestRouter(t *testing.T, svc scheduling.SchedulingService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig.JWTSecret = "routes-test-secret"

	r := gin.New()
	RegisterRoutes(r, &HandlerBundle{
		Schedule:    handlers.NewScheduleHandler(svc),
		Appointment: handlers.NewAppointmentHandler(svc),
		Patient:     handlers.NewPatientHandler(&stubPatientService{}),
	})
	return r
}

func token(t *testing.T, userID, role string) string {
	t.Helper()
	signed, err := utils.GenerateToken(userID, role, time.Hour)
	require.NoError(t, err)
	return signed
}

func doRequest(r *gin.Engine, method, path, bearer, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeErrorEnvelope(t *testing.T, w *httptest.ResponseRecorder) utils.ErrorEnvelope {
	t.Helper()
	var envelope utils.ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestAuthentication(t *testing.T) {
	r := newTestRouter(t, &stubSchedulingService{})

	t.Run("missing token", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/patients/doctors/doc-1/schedule", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		envelope := decodeErrorEnvelope(t, w)
		assert.False(t, envelope.Success)
		assert.Equal(t, "UNAUTHORIZED", envelope.Error.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/patients/doctors/doc-1/schedule", "not-a-jwt", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "UNAUTHORIZED", decodeErrorEnvelope(t, w).Error.Code)
	})

	t.Run("valid token passes", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/patients/doctors/doc-1/schedule", token(t, "doc-1", models.RoleDoctor), "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRoleEnforcement(t *testing.T) {
	r := newTestRouter(t, &stubSchedulingService{})

	t.Run("clerk cannot write schedules", func(t *testing.T) {
		w := doRequest(r, http.MethodPut, "/api/patients/doctors/doc-1/schedule",
			token(t, "clerk-1", models.RoleClerk), `{"weeklyAvailability":[]}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "INSUFFICIENT_ROLE", decodeErrorEnvelope(t, w).Error.Code)
	})

	t.Run("doctor cannot register patients", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/api/patients/register",
			token(t, "doc-1", models.RoleDoctor), `{}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("clerk cannot read patient records", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/patients/records",
			token(t, "clerk-1", models.RoleClerk), "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("nurse reads patient records", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/patients/records",
			token(t, "nurse-1", models.RoleNurse), "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestScheduleEndpoints(t *testing.T) {
	r := newTestRouter(t, &stubSchedulingService{})
	adminToken := token(t, "admin-1", models.RoleAdmin)

	t.Run("upsert returns envelope with schedule", func(t *testing.T) {
		w := doRequest(r, http.MethodPut, "/api/patients/doctors/doc-1/schedule", adminToken,
			`{"doctorName":"Dr. Achieng","weeklyAvailability":[{"dayOfWeek":1,"slots":[{"startTime":"09:00","endTime":"12:00"}]}]}`)
		require.Equal(t, http.StatusOK, w.Code)

		var envelope struct {
			Success bool `json:"success"`
			Data    struct {
				Schedule models.DoctorSchedule `json:"schedule"`
			} `json:"data"`
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		assert.Equal(t, "doc-1", envelope.Data.Schedule.DoctorID)
		assert.Equal(t, "admin-1", envelope.Data.Schedule.CreatedBy)
		assert.NotEmpty(t, envelope.Message)
	})

	t.Run("malformed body is a validation error", func(t *testing.T) {
		w := doRequest(r, http.MethodPut, "/api/patients/doctors/doc-1/schedule", adminToken, `{"weeklyAvailability":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeErrorEnvelope(t, w).Error.Code)
	})

	t.Run("service error maps to taxonomy envelope", func(t *testing.T) {
		failing := newTestRouter(t, &stubSchedulingService{err: &scheduling.ServiceError{
			Status: http.StatusNotFound, Code: "DOCTOR_SCHEDULE_NOT_FOUND", Message: "No schedule found for this doctor",
		}})
		w := doRequest(failing, http.MethodGet, "/api/patients/doctors/doc-9/schedule", adminToken, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "DOCTOR_SCHEDULE_NOT_FOUND", decodeErrorEnvelope(t, w).Error.Code)
	})
}

func TestBookingEndpoint(t *testing.T) {
	svc := &stubSchedulingService{}
	r := newTestRouter(t, svc)

	t.Run("clerk books an appointment", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/api/patients/records/1000001/appointments",
			token(t, "clerk-1", models.RoleClerk),
			`{"doctorId":"doc-1","appointmentDateTime":"2024-01-08T09:00:00Z","durationMinutes":30}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var envelope struct {
			Success bool `json:"success"`
			Data    struct {
				Appointment models.Appointment `json:"appointment"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		assert.Equal(t, "1000001", envelope.Data.Appointment.PatientID)
		assert.Equal(t, "doc-1", envelope.Data.Appointment.DoctorID)
		assert.Equal(t, models.Actor{UserID: "clerk-1", Role: models.RoleClerk}, svc.bookedFor)
	})

	t.Run("non-integer duration is a validation error", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/api/patients/records/1000001/appointments",
			token(t, "clerk-1", models.RoleClerk),
			`{"doctorId":"doc-1","appointmentDateTime":"2024-01-08T09:00:00Z","durationMinutes":"thirty"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeErrorEnvelope(t, w).Error.Code)
	})

	t.Run("doctor cannot book", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/api/patients/records/1000001/appointments",
			token(t, "doc-1", models.RoleDoctor), `{}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRegisterEndpoint(t *testing.T) {
	r := newTestRouter(t, &stubSchedulingService{})

	w := doRequest(r, http.MethodPost, "/api/patients/register", token(t, "clerk-1", models.RoleClerk),
		`{"nationalId":"123456789012345","firstName":"Amina"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Patient models.Patient `json:"patient"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "1000001", envelope.Data.Patient.ID)
	assert.Equal(t, "clerk-1", envelope.Data.Patient.RegisteredBy)
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter(t, &stubSchedulingService{})

	w := doRequest(r, http.MethodGet, "/api/unknown", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decodeErrorEnvelope(t, w).Error.Code)
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t, &stubSchedulingService{})

	w := doRequest(r, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "patient-scheduling-service", body["service"])
}
