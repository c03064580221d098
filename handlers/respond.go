package handlers

import (
	"errors"
	"net/http"

	"caregrid/services/patient"
	"caregrid/services/scheduling"
	"caregrid/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError translates typed service errors into the failure
// envelope; anything untyped is a 500.
func respondServiceError(c *gin.Context, logger *zap.Logger, err error) {
	var schedulingErr *scheduling.ServiceError
	if errors.As(err, &schedulingErr) {
		utils.JSONError(c, schedulingErr.Status, schedulingErr.Code, schedulingErr.Message)
		return
	}

	var patientErr *patient.ServiceError
	if errors.As(err, &patientErr) {
		utils.JSONError(c, patientErr.Status, patientErr.Code, patientErr.Message)
		return
	}

	logger.Error("Request failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error")
}
