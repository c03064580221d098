package handlers

import (
	"encoding/json"
	"net/http"

	"caregrid/middleware"
	"caregrid/models"
	"caregrid/services/patient"
	"caregrid/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PatientHandler serves patient registration and record endpoints.
type PatientHandler struct {
	Svc patient.PatientService
}

// NewPatientHandler creates a PatientHandler.
func NewPatientHandler(svc patient.PatientService) *PatientHandler {
	return &PatientHandler{Svc: svc}
}

// RegisterPatientHandler registers a new patient. The raw body is decoded
// twice: once into a key map so unknown fields can be rejected, once into the
// registration payload.
func (h *PatientHandler) RegisterPatientHandler(c *gin.Context) {
	logger := getLogger(c)

	body, err := c.GetRawData()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Request body must be valid JSON")
		return
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Request body must be valid JSON")
		return
	}
	providedFields := make([]string, 0, len(fields))
	for field := range fields {
		providedFields = append(providedFields, field)
	}

	var req models.PatientRegistration
	if err := json.Unmarshal(body, &req); err != nil {
		logger.Warn("Invalid registration payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Request body must be valid JSON")
		return
	}

	record, err := h.Svc.Register(middleware.CurrentActor(c), req, providedFields)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{"patient": record}, "Patient registered successfully")
}

// GetPatientRecordsHandler returns all patient records, newest first.
func (h *PatientHandler) GetPatientRecordsHandler(c *gin.Context) {
	logger := getLogger(c)

	patients, err := h.Svc.GetAll()
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	if patients == nil {
		patients = []models.Patient{}
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"patients": patients}, "Patient records retrieved successfully")
}

// GetPatientRecordHandler returns one patient record.
func (h *PatientHandler) GetPatientRecordHandler(c *gin.Context) {
	logger := getLogger(c)

	record, err := h.Svc.GetByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"patient": record}, "Patient record retrieved successfully")
}
