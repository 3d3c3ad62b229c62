package models

import "time"

// Prescription fulfillment states
const (
	PrescriptionPending   = "pending"
	PrescriptionDispensed = "dispensed"
)

type Prescription struct {
	PrescriptionID int                `json:"id" gorm:"primaryKey"`
	AppointmentID  int                `json:"appointment_id" gorm:"unique;not null"`
	DoctorID       int                `json:"doctor_id" gorm:"not null;index"`
	PatientID      int                `json:"patient_id" gorm:"not null;index"`
	Notes          string             `json:"notes"`
	Status         string             `json:"status" gorm:"not null;index"`
	Items          []PrescriptionItem `json:"items" gorm:"foreignKey:PrescriptionID"`
	CreatedAt      time.Time          `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time          `json:"updated_at" gorm:"autoUpdateTime"`
}

type PrescriptionItem struct {
	ItemID         int    `json:"id" gorm:"primaryKey"`
	PrescriptionID int    `json:"prescription_id" gorm:"not null;index"`
	MedicineName   string `json:"medicine_name" gorm:"not null"`
	Dosage         string `json:"dosage" gorm:"not null"`
	Frequency      string `json:"frequency" gorm:"not null"`
	Duration       string `json:"duration" gorm:"not null"`
}
