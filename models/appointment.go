package models

import "time"

// Appointment status values.
const (
	StatusBooked    = "booked"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Appointment duration bounds in minutes.
const (
	MinAppointmentMinutes     = 5
	MaxAppointmentMinutes     = 480
	DefaultAppointmentMinutes = 30
)

// Appointment is a booked visit of a patient with a doctor. Start and End are
// absolute instants; for a booked doctor no two [Start, End) intervals overlap.
type Appointment struct {
	ID              string     `bson:"id" json:"id"`
	PatientID       string     `bson:"patientId" json:"patientId"`
	DoctorID        string     `bson:"doctorId" json:"doctorId"`
	DoctorName      string     `bson:"doctorName,omitempty" json:"doctorName,omitempty"`
	Start           time.Time  `bson:"start" json:"start"`
	End             time.Time  `bson:"end" json:"end"`
	DurationMinutes int        `bson:"durationMinutes" json:"durationMinutes"`
	Reason          string     `bson:"reason,omitempty" json:"reason,omitempty"`
	Status          string     `bson:"status" json:"status"`
	BookedBy        string     `bson:"bookedBy" json:"bookedBy"`
	BookedByRole    string     `bson:"bookedByRole" json:"bookedByRole"`
	Source          string     `bson:"source" json:"source"`
	ReminderSentAt  *time.Time `bson:"reminderSentAt,omitempty" json:"reminderSentAt,omitempty"`
	CreatedAt       time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// BookingRequest is the payload for booking an appointment. DurationMinutes is
// a pointer so an omitted value can default without masking an explicit zero.
type BookingRequest struct {
	DoctorID            string `json:"doctorId"`
	DoctorName          string `json:"doctorName"`
	AppointmentDateTime string `json:"appointmentDateTime"`
	DurationMinutes     *int   `json:"durationMinutes"`
	Reason              string `json:"reason"`
	Source              string `json:"source"`
}
