package scheduling

import (
	"fmt"
	"net/http"
)

// ServiceError carries the error taxonomy code and the HTTP status the
// handler layer should answer with.
type ServiceError struct {
	Status  int
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newValidationError(message string) error {
	return &ServiceError{Status: http.StatusBadRequest, Code: "VALIDATION_ERROR", Message: message}
}

func newScheduleNotFoundError() error {
	return &ServiceError{Status: http.StatusNotFound, Code: "DOCTOR_SCHEDULE_NOT_FOUND", Message: "Doctor schedule not found"}
}

func newPatientNotFoundError() error {
	return &ServiceError{Status: http.StatusNotFound, Code: "PATIENT_NOT_FOUND", Message: "Patient record not found"}
}

func newDoctorUnavailableError(message string) error {
	return &ServiceError{Status: http.StatusConflict, Code: "DOCTOR_UNAVAILABLE", Message: message}
}

func newInsufficientRoleError(message string) error {
	return &ServiceError{Status: http.StatusForbidden, Code: "INSUFFICIENT_ROLE", Message: message}
}
