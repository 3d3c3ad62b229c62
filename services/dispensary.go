package services

import (
	"errors"
	"strconv"

	"github.com/AdityaTidake/MedPlus/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DispensaryService owns the pharmacy-side closing transaction: recording
// the billed amount and flipping the prescription to dispensed, atomically.
type DispensaryService struct {
	db    *gorm.DB
	locks *keyedMutex
}

func NewDispensaryService(db *gorm.DB) *DispensaryService {
	return &DispensaryService{db: db, locks: newKeyedMutex()}
}

// Dispense creates the dispensary record for a pending prescription and
// marks the prescription dispensed in one transaction. A prescription can
// be dispensed exactly once; a replayed call fails with a conflict rather
// than silently succeeding, so double submission stays detectable.
func (s *DispensaryService) Dispense(prescriptionID, byPharmacistID int, totalAmount float64, paymentStatus string) (*models.DispensaryRecord, error) {
	if totalAmount < 0 {
		return nil, errValidation("total amount cannot be negative")
	}
	if paymentStatus == "" {
		paymentStatus = models.PaymentPaid
	}
	if paymentStatus != models.PaymentPaid && paymentStatus != models.PaymentUnpaid {
		return nil, errValidation("payment status must be paid or unpaid")
	}

	unlock := s.locks.Lock(strconv.Itoa(prescriptionID))
	defer unlock()

	record := models.DispensaryRecord{
		PrescriptionID: prescriptionID,
		PharmacistID:   byPharmacistID,
		ReceiptNumber:  uuid.NewString(),
		TotalAmount:    totalAmount,
		PaymentStatus:  paymentStatus,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var prescription models.Prescription
		if err := tx.First(&prescription, prescriptionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errNotFound("prescription not found")
			}
			return err
		}

		// Conditional update so the flip and the record insert stand or
		// fall together even if another writer slipped in.
		res := tx.Model(&models.Prescription{}).
			Where("prescription_id = ? AND status = ?", prescriptionID, models.PrescriptionPending).
			Update("status", models.PrescriptionDispensed)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errConflict("prescription has already been dispensed")
		}

		return tx.Create(&record).Error
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetForPrescription returns the dispensary record closing the given
// prescription, if any.
func (s *DispensaryService) GetForPrescription(prescriptionID int) (*models.DispensaryRecord, error) {
	var record models.DispensaryRecord
	if err := s.db.Where("prescription_id = ?", prescriptionID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("dispensary record not found")
		}
		return nil, err
	}
	return &record, nil
}
