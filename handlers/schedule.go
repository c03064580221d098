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

// ScheduleHandler serves doctor schedule and availability endpoints.
type ScheduleHandler struct {
	Svc scheduling.SchedulingService
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(svc scheduling.SchedulingService) *ScheduleHandler {
	return &ScheduleHandler{Svc: svc}
}

// UpsertScheduleHandler writes a doctor's weekly availability template.
func (h *ScheduleHandler) UpsertScheduleHandler(c *gin.Context) {
	logger := getLogger(c)
	doctorID := c.Param("doctorId")

	var req models.ScheduleUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid schedule payload", zap.String("doctorId", doctorID), zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Request body must be valid JSON")
		return
	}

	schedule, err := h.Svc.UpsertSchedule(middleware.CurrentActor(c), doctorID, req)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"schedule": schedule}, "Doctor schedule updated successfully")
}

// GetScheduleHandler returns a doctor's stored weekly template.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	logger := getLogger(c)

	schedule, err := h.Svc.GetSchedule(c.Param("doctorId"))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"schedule": schedule}, "Doctor schedule retrieved successfully")
}

// GetAvailabilityHandler returns a doctor's free and booked slots for a date.
func (h *ScheduleHandler) GetAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)

	availability, err := h.Svc.Availability(c.Param("doctorId"), c.Query("date"))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, availability, "Doctor availability retrieved successfully")
}
