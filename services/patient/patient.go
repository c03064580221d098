package patient

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	patientRepo "caregrid/database/repository/patient"
	"caregrid/models"
)

var digitsOnlyRe = regexp.MustCompile(`\D`)
var nationalIDRe = regexp.MustCompile(`^\d{15}$`)

// allowedRegistrationFields guards against payloads carrying fields the
// registration endpoint does not accept.
var allowedRegistrationFields = map[string]bool{
	"nationalId":    true,
	"firstName":     true,
	"lastName":      true,
	"dateOfBirth":   true,
	"gender":        true,
	"phoneNumber":   true,
	"address":       true,
	"knownDiseases": true,
	"complaints":    true,
	"entryRoute":    true,
	"servicePoint":  true,
	"source":        true,
}

// PatientService manages patient registration and record retrieval.
type PatientService interface {
	// Register validates and stores a new patient. providedFields holds the
	// top-level JSON keys of the request body for unknown-field rejection.
	Register(actor models.Actor, req models.PatientRegistration, providedFields []string) (*models.Patient, error)
	// GetAll returns every patient record, newest first.
	GetAll() ([]models.Patient, error)
	// GetByID returns one patient record.
	GetByID(id string) (*models.Patient, error)
}

// DefaultPatientService is the production implementation.
type DefaultPatientService struct {
	Repo patientRepo.PatientRepository
	// HashSalt is mixed into the national-ID hash before storage.
	HashSalt string
}

// Register validates the payload wholesale and stores the patient with a
// counter-issued sequential ID.
func (s *DefaultPatientService) Register(actor models.Actor, req models.PatientRegistration, providedFields []string) (*models.Patient, error) {
	var unknown []string
	for _, field := range providedFields {
		if !allowedRegistrationFields[field] {
			unknown = append(unknown, field)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, newInvalidFieldsError("Unsupported fields: " + strings.Join(unknown, ", "))
	}

	if req.NationalID == "" || req.FirstName == "" || req.LastName == "" || req.DateOfBirth == "" ||
		req.Gender == "" || req.EntryRoute == "" || req.ServicePoint == "" {
		return nil, newValidationError("nationalId, firstName, lastName, dateOfBirth, gender, entryRoute, and servicePoint are required")
	}

	normalizedID := digitsOnlyRe.ReplaceAllString(req.NationalID, "")
	if !nationalIDRe.MatchString(normalizedID) {
		return nil, newValidationError("nationalId must contain exactly 15 digits")
	}

	if !isStringArray(req.KnownDiseases) || !isStringArray(req.Complaints) {
		return nil, newValidationError("knownDiseases and complaints must be arrays of non-empty strings")
	}

	entryRoute := normalizeEntryRoute(req.EntryRoute)
	if entryRoute == "" {
		return nil, newValidationError("entryRoute must be either OPD or A&E")
	}

	source := models.ResolveAuditSource(req.Source, models.SourceManual)
	if source == "" {
		return nil, newValidationError("source must be one of manual, device, api")
	}

	hash := s.hashNationalID(normalizedID)
	existing, err := s.Repo.GetByNationalIDHash(hash)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, newDuplicatePatientError()
	}

	id, err := s.Repo.NextPatientID()
	if err != nil {
		return nil, err
	}

	record := &models.Patient{
		ID:               id,
		NationalIDHash:   hash,
		FirstName:        strings.TrimSpace(req.FirstName),
		LastName:         strings.TrimSpace(req.LastName),
		DateOfBirth:      req.DateOfBirth,
		Gender:           strings.TrimSpace(req.Gender),
		PhoneNumber:      strings.TrimSpace(req.PhoneNumber),
		Address:          strings.TrimSpace(req.Address),
		KnownDiseases:    trimAll(req.KnownDiseases),
		Complaints:       trimAll(req.Complaints),
		EntryRoute:       entryRoute,
		ServicePoint:     strings.TrimSpace(req.ServicePoint),
		CreatedBy:        actor.UserID,
		UpdatedBy:        actor.UserID,
		Source:           source,
		RegisteredBy:     actor.UserID,
		RegisteredByRole: actor.Role,
	}

	if err := s.Repo.Create(record); err != nil {
		// The unique index can still trip under concurrent registrations.
		if errors.Is(err, patientRepo.ErrDuplicatePatient) {
			return nil, newDuplicatePatientError()
		}
		return nil, err
	}
	return record, nil
}

// GetAll returns every patient record, newest first.
func (s *DefaultPatientService) GetAll() ([]models.Patient, error) {
	return s.Repo.GetAll()
}

// GetByID returns one patient record.
func (s *DefaultPatientService) GetByID(id string) (*models.Patient, error) {
	record, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, newPatientNotFoundError()
	}
	return record, nil
}

func (s *DefaultPatientService) hashNationalID(normalizedID string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s:%s", s.HashSalt, normalizedID)))
	return hex.EncodeToString(sum[:])
}

func normalizeEntryRoute(value string) string {
	normalized := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(value)), " ", "")
	switch normalized {
	case "OPD":
		return models.EntryRouteOPD
	case "A&E", "AE":
		return models.EntryRouteEmergency
	}
	return ""
}

func isStringArray(values []string) bool {
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			return false
		}
	}
	return true
}

func trimAll(values []string) []string {
	trimmed := make([]string, 0, len(values))
	for _, value := range values {
		trimmed = append(trimmed, strings.TrimSpace(value))
	}
	return trimmed
}
