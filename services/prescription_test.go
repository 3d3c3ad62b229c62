package services

import (
	"testing"
	"time"

	"github.com/AdityaTidake/MedPlus/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paracetamol() []PrescriptionItemInput {
	return []PrescriptionItemInput{
		{MedicineName: "Paracetamol", Dosage: "500mg", Frequency: "2x/day", Duration: "5 days"},
	}
}

func TestCreatePrescriptionRequiresItems(t *testing.T) {
	db := setupTestDB(t)
	scheduler := NewSchedulerService(db)
	s := NewPrescriptionService(db)
	doctor := seedDoctor(t, db, "d1")
	patient := seedPatient(t, db, "p1")

	appointment, err := scheduler.Book(patient.PatientID, doctor.DoctorID, futureDate(1), "10:00")
	require.NoError(t, err)

	_, err = s.Create(appointment.AppointmentID, doctor.DoctorID, "", nil)
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)

	_, err = s.Create(appointment.AppointmentID, doctor.DoctorID, "", []PrescriptionItemInput{
		{MedicineName: "Paracetamol", Dosage: " ", Frequency: "2x/day", Duration: "5 days"},
	})
	require.ErrorAs(t, err, &validation)

	// nothing may be persisted after a rejected create
	var count int64
	require.NoError(t, db.Model(&models.Prescription{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreatePrescriptionAuthorization(t *testing.T) {
	db := setupTestDB(t)
	scheduler := NewSchedulerService(db)
	s := NewPrescriptionService(db)
	owner := seedDoctor(t, db, "d1")
	other := seedDoctor(t, db, "d2")
	patient := seedPatient(t, db, "p1")

	appointment, err := scheduler.Book(patient.PatientID, owner.DoctorID, futureDate(1), "10:00")
	require.NoError(t, err)

	_, err = s.Create(appointment.AppointmentID, other.DoctorID, "", paracetamol())
	var forbidden *ForbiddenError
	require.ErrorAs(t, err, &forbidden)

	_, err = s.Create(9999, owner.DoctorID, "", paracetamol())
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestCreatePrescriptionLifecycle(t *testing.T) {
	db := setupTestDB(t)
	scheduler := NewSchedulerService(db)
	s := NewPrescriptionService(db)
	doctor := seedDoctor(t, db, "d1")
	patient := seedPatient(t, db, "p1")

	appointment, err := scheduler.Book(patient.PatientID, doctor.DoctorID, futureDate(1), "10:00")
	require.NoError(t, err)

	prescription, err := s.Create(appointment.AppointmentID, doctor.DoctorID, "after meals", paracetamol())
	require.NoError(t, err)
	assert.Equal(t, models.PrescriptionPending, prescription.Status)
	assert.Equal(t, patient.PatientID, prescription.PatientID)
	require.Len(t, prescription.Items, 1)
	assert.Equal(t, "Paracetamol", prescription.Items[0].MedicineName)

	// prescribing moves the consultation to completed
	var consulted models.Appointment
	require.NoError(t, db.First(&consulted, appointment.AppointmentID).Error)
	assert.Equal(t, models.AppointmentCompleted, consulted.Status)

	pending, err := s.ListPending()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, prescription.PrescriptionID, pending[0].PrescriptionID)
	require.Len(t, pending[0].Items, 1)

	// one prescription per appointment
	_, err = s.Create(appointment.AppointmentID, doctor.DoctorID, "", paracetamol())
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestCreatePrescriptionOnCancelledAppointment(t *testing.T) {
	db := setupTestDB(t)
	scheduler := NewSchedulerService(db)
	s := NewPrescriptionService(db)
	doctor := seedDoctor(t, db, "d1")
	patient := seedPatient(t, db, "p1")

	appointment, err := scheduler.Book(patient.PatientID, doctor.DoctorID, futureDate(1), "10:00")
	require.NoError(t, err)
	_, err = scheduler.Cancel(appointment.AppointmentID, patient.PatientID)
	require.NoError(t, err)

	_, err = s.Create(appointment.AppointmentID, doctor.DoctorID, "", paracetamol())
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestCreatePrescriptionOnCompletedAppointment(t *testing.T) {
	db := setupTestDB(t)
	scheduler := NewSchedulerService(db)
	s := NewPrescriptionService(db)
	doctor := seedDoctor(t, db, "d1")
	patient := seedPatient(t, db, "p1")

	appointment, err := scheduler.Book(patient.PatientID, doctor.DoctorID, futureDate(1), "10:00")
	require.NoError(t, err)
	_, err = scheduler.Complete(appointment.AppointmentID, doctor.DoctorID)
	require.NoError(t, err)

	prescription, err := s.Create(appointment.AppointmentID, doctor.DoctorID, "", paracetamol())
	require.NoError(t, err)
	assert.Equal(t, models.PrescriptionPending, prescription.Status)
}

func TestListPendingOldestFirst(t *testing.T) {
	db := setupTestDB(t)
	scheduler := NewSchedulerService(db)
	s := NewPrescriptionService(db)
	doctor := seedDoctor(t, db, "d1")
	patient := seedPatient(t, db, "p1")

	a1, err := scheduler.Book(patient.PatientID, doctor.DoctorID, futureDate(1), "10:00")
	require.NoError(t, err)
	a2, err := scheduler.Book(patient.PatientID, doctor.DoctorID, futureDate(1), "10:30")
	require.NoError(t, err)

	newer, err := s.Create(a1.AppointmentID, doctor.DoctorID, "", paracetamol())
	require.NoError(t, err)
	older, err := s.Create(a2.AppointmentID, doctor.DoctorID, "", paracetamol())
	require.NoError(t, err)

	// force distinct creation times; sqlite timestamps can tie
	require.NoError(t, db.Model(&models.Prescription{}).
		Where("prescription_id = ?", older.PrescriptionID).
		Update("created_at", time.Now().Add(-time.Hour)).Error)

	pending, err := s.ListPending()
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, older.PrescriptionID, pending[0].PrescriptionID)
	assert.Equal(t, newer.PrescriptionID, pending[1].PrescriptionID)
}
