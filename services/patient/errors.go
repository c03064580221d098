package patient

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

func newInvalidFieldsError(message string) error {
	return &ServiceError{Status: http.StatusBadRequest, Code: "INVALID_FIELDS", Message: message}
}

func newDuplicatePatientError() error {
	return &ServiceError{Status: http.StatusConflict, Code: "DUPLICATE_PATIENT", Message: "A patient with this national ID already exists"}
}

func newPatientNotFoundError() error {
	return &ServiceError{Status: http.StatusNotFound, Code: "PATIENT_NOT_FOUND", Message: "Patient record not found"}
}
