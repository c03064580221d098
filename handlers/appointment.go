package handlers

import (
	"net/http"

	"caregrid/middleware"
	"caregrid/models"
	"caregrid/services/scheduling"
	"caregrid/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler serves appointment booking and listing endpoints.
type AppointmentHandler struct {
	Svc scheduling.SchedulingService
}

// NewAppointmentHandler creates an AppointmentHandler.
func NewAppointmentHandler(svc scheduling.SchedulingService) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc}
}

// BookAppointmentHandler books an appointment for the patient in the path.
func (h *AppointmentHandler) BookAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)
	patientID := c.Param("id")

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid booking payload", zap.String("patientId", patientID), zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "durationMinutes must be an integer and the body valid JSON")
		return
	}

	appointment, err := h.Svc.BookAppointment(c.Request.Context(), middleware.CurrentActor(c), patientID, req)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{"appointment": appointment}, "Appointment booked successfully")
}

// ListPatientAppointmentsHandler lists a patient's appointments newest first.
func (h *AppointmentHandler) ListPatientAppointmentsHandler(c *gin.Context) {
	logger := getLogger(c)

	appointments, err := h.Svc.PatientAppointments(c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"appointments": appointments}, "Patient appointments retrieved successfully")
}
