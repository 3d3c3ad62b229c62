package models

import "time"

// Appointment lifecycle states. Scheduled is the only active state;
// completed and cancelled are terminal.
const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

type Appointment struct {
	AppointmentID int       `json:"id" gorm:"primaryKey"`
	PatientID     int       `json:"patient_id" gorm:"not null;index"`
	DoctorID      int       `json:"doctor_id" gorm:"not null;index"`
	Date          string    `json:"date" gorm:"not null;index"` // YYYY-MM-DD
	Time          string    `json:"time" gorm:"not null"`       // HH:MM
	TokenNumber   int       `json:"token_number" gorm:"not null"`
	Status        string    `json:"status" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
