package services

import (
	"errors"
	"strings"

	"github.com/AdityaTidake/MedPlus/models"

	"gorm.io/gorm"
)

// PrescriptionService owns prescription creation by doctors and the pending
// queue consumed by the pharmacy.
type PrescriptionService struct {
	db *gorm.DB
}

func NewPrescriptionService(db *gorm.DB) *PrescriptionService {
	return &PrescriptionService{db: db}
}

// PrescriptionItemInput is one medicine line on a new prescription. All
// four fields are required.
type PrescriptionItemInput struct {
	MedicineName string `json:"medicine_name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration"`
}

// Create writes a pending prescription against the appointment. The acting
// doctor must own the appointment, the appointment must not be cancelled,
// and at most one prescription may exist per appointment. Creating the
// prescription marks the appointment completed in the same transaction --
// the consultation evidently took place.
func (s *PrescriptionService) Create(appointmentID, byDoctorID int, notes string, items []PrescriptionItemInput) (*models.Prescription, error) {
	if len(items) == 0 {
		return nil, errValidation("prescription must contain at least one item")
	}
	for i, item := range items {
		if strings.TrimSpace(item.MedicineName) == "" ||
			strings.TrimSpace(item.Dosage) == "" ||
			strings.TrimSpace(item.Frequency) == "" ||
			strings.TrimSpace(item.Duration) == "" {
			return nil, errValidation("item %d: medicine name, dosage, frequency and duration are all required", i+1)
		}
	}

	var prescription models.Prescription

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var appointment models.Appointment
		if err := tx.First(&appointment, appointmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errNotFound("appointment not found")
			}
			return err
		}
		if appointment.DoctorID != byDoctorID {
			return errForbidden("appointment belongs to another doctor")
		}
		if appointment.Status == models.AppointmentCancelled {
			return errConflict("appointment has been cancelled")
		}

		var existing int64
		if err := tx.Model(&models.Prescription{}).
			Where("appointment_id = ?", appointmentID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return errConflict("prescription already exists for this appointment")
		}

		prescription = models.Prescription{
			AppointmentID: appointmentID,
			DoctorID:      byDoctorID,
			PatientID:     appointment.PatientID,
			Notes:         notes,
			Status:        models.PrescriptionPending,
		}
		for _, item := range items {
			prescription.Items = append(prescription.Items, models.PrescriptionItem{
				MedicineName: item.MedicineName,
				Dosage:       item.Dosage,
				Frequency:    item.Frequency,
				Duration:     item.Duration,
			})
		}
		if err := tx.Create(&prescription).Error; err != nil {
			return err
		}

		if appointment.Status == models.AppointmentScheduled {
			return tx.Model(&appointment).
				Update("status", models.AppointmentCompleted).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &prescription, nil
}

// Get returns a single prescription with its items.
func (s *PrescriptionService) Get(prescriptionID int) (*models.Prescription, error) {
	var prescription models.Prescription
	if err := s.db.Preload("Items").First(&prescription, prescriptionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("prescription not found")
		}
		return nil, err
	}
	return &prescription, nil
}

// ListPending returns every pending prescription across all doctors and
// patients, oldest first, so the pharmacy works its queue fairly.
func (s *PrescriptionService) ListPending() ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := s.db.Preload("Items").
		Where("status = ?", models.PrescriptionPending).
		Order("created_at asc").
		Find(&prescriptions).Error
	return prescriptions, err
}
