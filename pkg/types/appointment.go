package types

import "time"

// AppointmentStatus represents appointment status values
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "SCHEDULED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
)

// ValidStatus reports whether the status is one of the known values
func ValidStatus(status AppointmentStatus) bool {
	switch status {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether an appointment status may move from one
// value to another. SCHEDULED may complete or cancel; COMPLETED and
// CANCELLED are terminal. Self-transitions are allowed so edits that do not
// touch the status still pass.
func CanTransition(from, to AppointmentStatus) bool {
	if from == to {
		return true
	}
	switch from {
	case StatusScheduled:
		return to == StatusCompleted || to == StatusCancelled
	default:
		return false
	}
}

// Appointment represents a scheduled appointment. DoctorName is denormalized
// from the doctors table for display.
type Appointment struct {
	ID              string            `json:"id" db:"id"`
	PatientID       string            `json:"patientId" db:"patient_id"`
	DoctorID        string            `json:"doctorId" db:"doctor_id"`
	DoctorName      string            `json:"doctorName" db:"doctor_name"`
	AppointmentTime time.Time         `json:"appointmentTime" db:"appointment_time"`
	Status          AppointmentStatus `json:"status" db:"status"`
	CreatedAt       time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time         `json:"updatedAt" db:"updated_at"`
}

// CreateAppointmentRequest carries appointment creation payloads
type CreateAppointmentRequest struct {
	PatientID       string    `json:"patientId"`
	DoctorID        string    `json:"doctorId"`
	AppointmentTime time.Time `json:"appointmentTime"`
}

// UpdateAppointmentRequest carries appointment update payloads
type UpdateAppointmentRequest struct {
	PatientID       string            `json:"patientId"`
	DoctorID        string            `json:"doctorId"`
	AppointmentTime time.Time         `json:"appointmentTime"`
	Status          AppointmentStatus `json:"status"`
}

// DaySchedule holds the appointments of a single calendar date, ordered by
// time ascending
type DaySchedule struct {
	Date         string         `json:"date"`
	Appointments []*Appointment `json:"appointments"`
}
