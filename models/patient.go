package models

import "time"

// Patient entry routes.
const (
	EntryRouteOPD       = "OPD"
	EntryRouteEmergency = "A&E"
)

// Patient is a registered hospital patient. The national ID itself is never
// stored, only a salted hash used for duplicate detection.
type Patient struct {
	ID               string    `bson:"id" json:"id"`
	NationalIDHash   string    `bson:"nationalIdHash" json:"-"`
	FirstName        string    `bson:"firstName" json:"firstName"`
	LastName         string    `bson:"lastName" json:"lastName"`
	DateOfBirth      string    `bson:"dateOfBirth" json:"dateOfBirth"`
	Gender           string    `bson:"gender" json:"gender"`
	PhoneNumber      string    `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Address          string    `bson:"address,omitempty" json:"address,omitempty"`
	KnownDiseases    []string  `bson:"knownDiseases" json:"knownDiseases"`
	Complaints       []string  `bson:"complaints" json:"complaints"`
	EntryRoute       string    `bson:"entryRoute" json:"entryRoute"`
	ServicePoint     string    `bson:"servicePoint" json:"servicePoint"`
	CreatedBy        string    `bson:"createdBy" json:"createdBy"`
	UpdatedBy        string    `bson:"updatedBy" json:"updatedBy"`
	Source           string    `bson:"source" json:"source"`
	RegisteredBy     string    `bson:"registeredBy" json:"registeredBy"`
	RegisteredByRole string    `bson:"registeredByRole" json:"registeredByRole"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PatientRegistration is the payload for registering a new patient.
type PatientRegistration struct {
	NationalID    string   `json:"nationalId"`
	FirstName     string   `json:"firstName"`
	LastName      string   `json:"lastName"`
	DateOfBirth   string   `json:"dateOfBirth"`
	Gender        string   `json:"gender"`
	PhoneNumber   string   `json:"phoneNumber"`
	Address       string   `json:"address"`
	KnownDiseases []string `json:"knownDiseases"`
	Complaints    []string `json:"complaints"`
	EntryRoute    string   `json:"entryRoute"`
	ServicePoint  string   `json:"servicePoint"`
	Source        string   `json:"source"`
}

// Counter is a persisted, atomically incremented sequence used for patient IDs.
type Counter struct {
	Key       string    `bson:"key" json:"key"`
	Value     int64     `bson:"value" json:"value"`
	CreatedBy string    `bson:"createdBy" json:"createdBy"`
	UpdatedBy string    `bson:"updatedBy" json:"updatedBy"`
	Source    string    `bson:"source" json:"source"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
