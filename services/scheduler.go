package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/AdityaTidake/MedPlus/models"

	"gorm.io/gorm"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// SchedulerService owns the appointment lifecycle: booking with queue token
// assignment, cancellation by the owning patient and completion by the
// owning doctor.
type SchedulerService struct {
	db    *gorm.DB
	slots *keyedMutex
}

func NewSchedulerService(db *gorm.DB) *SchedulerService {
	return &SchedulerService{db: db, slots: newKeyedMutex()}
}

// Book creates a scheduled appointment for the patient with the doctor on
// the given date and time. The token number is the count of appointments
// already taken for that doctor and date (any status) plus one; assignment
// is serialized per (doctor, date) so concurrent bookings never share a
// token.
func (s *SchedulerService) Book(patientID, doctorID int, date, timeStr string) (*models.Appointment, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, errValidation("invalid date format, use YYYY-MM-DD")
	}
	slot, err := time.Parse(timeLayout, timeStr)
	if err != nil {
		return nil, errValidation("invalid time format, use HH:MM")
	}

	now := time.Now()
	at := time.Date(day.Year(), day.Month(), day.Day(), slot.Hour(), slot.Minute(), 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if at.Before(today) || (day.Format(dateLayout) == today.Format(dateLayout) && at.Before(now)) {
		return nil, errValidation("appointment date cannot be in the past")
	}

	var doctor models.Doctor
	if err := s.db.First(&doctor, doctorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("doctor not found")
		}
		return nil, err
	}

	unlock := s.slots.Lock(fmt.Sprintf("%d|%s", doctorID, date))
	defer unlock()

	appointment := models.Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		Time:      timeStr,
		Status:    models.AppointmentScheduled,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&models.Appointment{}).
			Where("doctor_id = ? AND date = ?", doctorID, date).
			Count(&taken).Error; err != nil {
			return err
		}
		appointment.TokenNumber = int(taken) + 1
		return tx.Create(&appointment).Error
	})
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// Cancel moves a scheduled appointment to cancelled. Only the owning
// patient may cancel, and only while the appointment is still scheduled.
// The row is kept; cancellation is a status change, never a delete.
func (s *SchedulerService) Cancel(appointmentID, byPatientID int) (*models.Appointment, error) {
	return s.transition(appointmentID, models.AppointmentCancelled, func(a *models.Appointment) error {
		if a.PatientID != byPatientID {
			return errForbidden("appointment belongs to another patient")
		}
		return nil
	})
}

// Complete moves a scheduled appointment to completed. Only the owning
// doctor may complete it.
func (s *SchedulerService) Complete(appointmentID, byDoctorID int) (*models.Appointment, error) {
	return s.transition(appointmentID, models.AppointmentCompleted, func(a *models.Appointment) error {
		if a.DoctorID != byDoctorID {
			return errForbidden("appointment belongs to another doctor")
		}
		return nil
	})
}

// transition re-reads the appointment, runs the ownership check and applies
// the one-way status change. Both terminal states reject further moves.
func (s *SchedulerService) transition(appointmentID int, to string, owns func(*models.Appointment) error) (*models.Appointment, error) {
	var appointment models.Appointment

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&appointment, appointmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errNotFound("appointment not found")
			}
			return err
		}
		if err := owns(&appointment); err != nil {
			return err
		}
		if appointment.Status != models.AppointmentScheduled {
			return errConflict("appointment is already %s", appointment.Status)
		}
		appointment.Status = to
		return tx.Model(&appointment).Update("status", to).Error
	})
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// ListForPatient returns all of the patient's appointments ordered by date,
// time and token number.
func (s *SchedulerService) ListForPatient(patientID int) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := s.db.Where("patient_id = ?", patientID).
		Order("date asc, time asc, token_number asc").
		Find(&appointments).Error
	return appointments, err
}

// ListForDoctor returns the doctor's appointments, optionally filtered to a
// single date, in the same ordering as ListForPatient.
func (s *SchedulerService) ListForDoctor(doctorID int, date string) ([]models.Appointment, error) {
	q := s.db.Where("doctor_id = ?", doctorID)
	if date != "" {
		if _, err := time.Parse(dateLayout, date); err != nil {
			return nil, errValidation("invalid date format, use YYYY-MM-DD")
		}
		q = q.Where("date = ?", date)
	}
	var appointments []models.Appointment
	err := q.Order("date asc, time asc, token_number asc").Find(&appointments).Error
	return appointments, err
}
