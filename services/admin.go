package services

import (
	"errors"
	"time"

	"github.com/AdityaTidake/MedPlus/models"

	"gorm.io/gorm"
)

// AdminService aggregates counts across the other components and manages
// the doctor roster.
type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

type HospitalStats struct {
	TotalDoctors          int64 `json:"total_doctors"`
	TotalPatients         int64 `json:"total_patients"`
	TotalPharmacists      int64 `json:"total_pharmacists"`
	TodayAppointments     int64 `json:"today_appointments"`
	CompletedAppointments int64 `json:"completed_appointments"`
	PendingPrescriptions  int64 `json:"pending_prescriptions"`
}

// Stats counts doctors, patients, pharmacists, today's and completed
// appointments and the pharmacy backlog.
func (s *AdminService) Stats() (*HospitalStats, error) {
	var stats HospitalStats

	if err := s.db.Model(&models.Doctor{}).Count(&stats.TotalDoctors).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Patient{}).Count(&stats.TotalPatients).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Pharmacist{}).Count(&stats.TotalPharmacists).Error; err != nil {
		return nil, err
	}

	today := time.Now().Format(dateLayout)
	if err := s.db.Model(&models.Appointment{}).
		Where("date = ?", today).
		Count(&stats.TodayAppointments).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Appointment{}).
		Where("status = ?", models.AppointmentCompleted).
		Count(&stats.CompletedAppointments).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Prescription{}).
		Where("status = ?", models.PrescriptionPending).
		Count(&stats.PendingPrescriptions).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

// ListDoctors returns the full roster with user details.
func (s *AdminService) ListDoctors() ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := s.db.Preload("User").Find(&doctors).Error
	return doctors, err
}

// ListPharmacists returns all pharmacists with user details.
func (s *AdminService) ListPharmacists() ([]models.Pharmacist, error) {
	var pharmacists []models.Pharmacist
	err := s.db.Preload("User").Find(&pharmacists).Error
	return pharmacists, err
}

// RemoveDoctor deletes the doctor's roster row and user record. Removal is
// refused while the doctor still has scheduled appointments; completed and
// cancelled history is retained untouched.
func (s *AdminService) RemoveDoctor(doctorID int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var doctor models.Doctor
		if err := tx.First(&doctor, doctorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errNotFound("doctor not found")
			}
			return err
		}

		var active int64
		if err := tx.Model(&models.Appointment{}).
			Where("doctor_id = ? AND status = ?", doctorID, models.AppointmentScheduled).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return errConflict("doctor still has scheduled appointments")
		}

		if err := tx.Delete(&doctor).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, doctor.UserID).Error
	})
}
