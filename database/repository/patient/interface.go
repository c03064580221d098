package patientRepo

import (
	"errors"

	"caregrid/models"
)

// ErrDuplicatePatient is returned when a patient with the same national-ID
// hash already exists.
var ErrDuplicatePatient = errors.New("a patient with this national ID already exists")

// PatientRepository defines persistence for patient records.
type PatientRepository interface {
	// GetByID returns the patient, or (nil, nil) when the record does not exist.
	GetByID(id string) (*models.Patient, error)
	// GetByNationalIDHash returns the patient with the given hash, or (nil, nil).
	GetByNationalIDHash(hash string) (*models.Patient, error)
	// GetAll returns all patients sorted by registration time descending.
	GetAll() ([]models.Patient, error)
	// Create inserts a new patient. Returns ErrDuplicatePatient when the
	// national-ID hash collides with an existing record.
	Create(patient *models.Patient) error
	// NextPatientID atomically increments and returns the persisted patient-ID
	// sequence.
	NextPatientID() (string, error)
}
