package models

import "time"

// Payment states recorded on a dispensary record
const (
	PaymentPaid   = "paid"
	PaymentUnpaid = "unpaid"
)

type DispensaryRecord struct {
	RecordID       int       `json:"id" gorm:"primaryKey"`
	PrescriptionID int       `json:"prescription_id" gorm:"unique;not null"`
	PharmacistID   int       `json:"pharmacist_id" gorm:"not null"`
	ReceiptNumber  string    `json:"receipt_number" gorm:"not null"`
	TotalAmount    float64   `json:"total_amount" gorm:"not null"`
	PaymentStatus  string    `json:"payment_status" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
}
