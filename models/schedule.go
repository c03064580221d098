package models

import "time"

// ScheduleSlot is a single bookable window within a weekday template,
// expressed as HH:mm wall-clock times.
type ScheduleSlot struct {
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// DayAvailability holds the slots a doctor offers on one day of the week
// (0-6, Sunday=0).
type DayAvailability struct {
	DayOfWeek int            `bson:"dayOfWeek" json:"dayOfWeek"`
	Slots     []ScheduleSlot `bson:"slots" json:"slots"`
}

// DoctorSchedule is a doctor's recurring weekly availability template.
type DoctorSchedule struct {
	DoctorID           string            `bson:"doctorId" json:"doctorId"`
	DoctorName         string            `bson:"doctorName,omitempty" json:"doctorName,omitempty"`
	Department         string            `bson:"department,omitempty" json:"department,omitempty"`
	WeeklyAvailability []DayAvailability `bson:"weeklyAvailability" json:"weeklyAvailability"`
	CreatedBy          string            `bson:"createdBy" json:"createdBy"`
	UpdatedBy          string            `bson:"updatedBy" json:"updatedBy"`
	Source             string            `bson:"source" json:"source"`
	CreatedAt          time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// ScheduleUpsertRequest is the payload for writing a doctor's weekly template.
type ScheduleUpsertRequest struct {
	DoctorName         string            `json:"doctorName"`
	Department         string            `json:"department"`
	WeeklyAvailability []DayAvailability `json:"weeklyAvailability"`
	Source             string            `json:"source"`
}

// BookedSlot is the display view of an existing booking within a day.
type BookedSlot struct {
	AppointmentID string    `json:"appointmentId"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	PatientID     string    `json:"patientId"`
}

// DoctorAvailability is the free/busy breakdown for one doctor on one date.
type DoctorAvailability struct {
	DoctorID       string         `json:"doctorId"`
	Date           string         `json:"date"`
	DayOfWeek      int            `json:"dayOfWeek"`
	AvailableSlots []ScheduleSlot `json:"availableSlots"`
	BookedSlots    []BookedSlot   `json:"bookedSlots"`
}
