package services

import (
	"sync"
	"testing"

	"github.com/AdityaTidake/MedPlus/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookAssignsSequentialTokens(t *testing.T) {
	db := setupTestDB(t)
	s := NewSchedulerService(db)
	doctor := seedDoctor(t, db, "d1")
	patient := seedPatient(t, db, "p1")
	date := futureDate(1)

	first, err := s.Book(patient.PatientID, doctor.DoctorID, date, "10:00")
	require.NoError(t, err)
	assert.Equal(t, 1, first.TokenNumber)
	assert.Equal(t, models.AppointmentScheduled, first.Status)

	second, err := s.Book(patient.PatientID, doctor.DoctorID, date, "10:30")
	require.NoError(t, err)
	assert.Equal(t, 2, second.TokenNumber)

	// cancellation never frees a token
	_, err = s.Cancel(first.AppointmentID, patient.PatientID)
	require.NoError(t, err)

	third, err := s.Book(patient.PatientID, doctor.DoctorID, date, "11:00")
	require.NoError(t, err)
	assert.Equal(t, 3, third.TokenNumber)

	var unchanged models.Appointment
	require.NoError(t, db.First(&unchanged, second.AppointmentID).Error)
	assert.Equal(t, 2, unchanged.TokenNumber)
}

func TestBookTokensIndependentPerDoctorAndDate(t *testing.T) {
	db := setupTestDB(t)
	s := NewSchedulerService(db)
	d1 := seedDoctor(t, db, "d1")
	d2 := seedDoctor(t, db, "d2")
	patient := seedPatient(t, db, "p1")

	a, err := s.Book(patient.PatientID, d1.DoctorID, futureDate(1), "10:00")
	require.NoError(t, err)
	b, err := s.Book(patient.PatientID, d2.DoctorID, futureDate(1), "10:00")
	require.NoError(t, err)
	c, err := s.Book(patient.PatientID, d1.DoctorID, futureDate(2), "10:00")
	require.NoError(t, err)

	assert.Equal(t, 1, a.TokenNumber)
	assert.Equal(t, 1, b.TokenNumber)
	assert.Equal(t, 1, c.TokenNumber)
}

func TestBookConcurrentTokensUnique(t *testing.T) {
	db := setupTestDB(t)
	s := NewSchedulerService(db)
	doctor := seedDoctor(t, db, "d1")
	patient := seedPatient(t, db, "p1")
	date := futureDate(1)

	const n = 20
	tokens := make(chan int, n)
	errs := make(chan error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			appointment, err := s.Book(patient.PatientID, doctor.DoctorID, date, "10:00")
			if err != nil {
				errs <- err
				return
			}
			tokens <- appointment.TokenNumber
		}()
	}
	wg.Wait()
	close(tokens)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	seen := make(map[int]bool)
	for token := range tokens {
		assert.False(t, seen[token], "token %d assigned twice", token)
		seen[token] = true
	}
	require.Len(t, seen, n)
	for i := 1; i <= n; i++ {
		assert.True(t, seen[i], "token %d missing", i)
	}
}

func TestBookValidation(t *testing.T) {
	db := setupTestDB(t)
	s := NewSchedulerService(db)
	doctor := seedDoctor(t, db, "d1")
	patient := seedPatient(t, db, "p1")

	tests := []struct {
		name string
		date string
		time string
	}{
		{"malformed date", "01-06-2031", "10:00"},
		{"malformed time", futureDate(1), "ten"},
		{"past date", "2020-01-01", "10:00"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Book(patient.PatientID, doctor.DoctorID, tc.date, tc.time)
			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
		})
	}

	_, err := s.Book(patient.PatientID, 9999, futureDate(1), "10:00")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestCancelOnlyByOwnerWhileScheduled(t *testing.T) {
	db := setupTestDB(t)
	s := NewSchedulerService(db)
	doctor := seedDoctor(t, db, "d1")
	owner := seedPatient(t, db, "p1")
	other := seedPatient(t, db, "p2")

	appointment, err := s.Book(owner.PatientID, doctor.DoctorID, futureDate(1), "10:00")
	require.NoError(t, err)

	_, err = s.Cancel(appointment.AppointmentID, other.PatientID)
	var forbidden *ForbiddenError
	require.ErrorAs(t, err, &forbidden)

	cancelled, err := s.Cancel(appointment.AppointmentID, owner.PatientID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCancelled, cancelled.Status)

	// second cancel fails without corrupting state
	_, err = s.Cancel(appointment.AppointmentID, owner.PatientID)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)

	var current models.Appointment
	require.NoError(t, db.First(&current, appointment.AppointmentID).Error)
	assert.Equal(t, models.AppointmentCancelled, current.Status)

	_, err = s.Cancel(9999, owner.PatientID)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestCompleteOnlyByOwningDoctor(t *testing.T) {
	db := setupTestDB(t)
	s := NewSchedulerService(db)
	owner := seedDoctor(t, db, "d1")
	other := seedDoctor(t, db, "d2")
	patient := seedPatient(t, db, "p1")

	appointment, err := s.Book(patient.PatientID, owner.DoctorID, futureDate(1), "10:00")
	require.NoError(t, err)

	_, err = s.Complete(appointment.AppointmentID, other.DoctorID)
	var forbidden *ForbiddenError
	require.ErrorAs(t, err, &forbidden)

	completed, err := s.Complete(appointment.AppointmentID, owner.DoctorID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCompleted, completed.Status)
}

func TestCompleteCancelledAppointmentConflicts(t *testing.T) {
	db := setupTestDB(t)
	s := NewSchedulerService(db)
	doctor := seedDoctor(t, db, "d1")
	patient := seedPatient(t, db, "p1")

	appointment, err := s.Book(patient.PatientID, doctor.DoctorID, futureDate(1), "10:00")
	require.NoError(t, err)
	_, err = s.Cancel(appointment.AppointmentID, patient.PatientID)
	require.NoError(t, err)

	_, err = s.Complete(appointment.AppointmentID, doctor.DoctorID)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestListOrdering(t *testing.T) {
	db := setupTestDB(t)
	s := NewSchedulerService(db)
	doctor := seedDoctor(t, db, "d1")
	patient := seedPatient(t, db, "p1")

	later, err := s.Book(patient.PatientID, doctor.DoctorID, futureDate(2), "09:00")
	require.NoError(t, err)
	soonLate, err := s.Book(patient.PatientID, doctor.DoctorID, futureDate(1), "14:00")
	require.NoError(t, err)
	soonEarly, err := s.Book(patient.PatientID, doctor.DoctorID, futureDate(1), "08:00")
	require.NoError(t, err)

	forPatient, err := s.ListForPatient(patient.PatientID)
	require.NoError(t, err)
	require.Len(t, forPatient, 3)
	assert.Equal(t, soonEarly.AppointmentID, forPatient[0].AppointmentID)
	assert.Equal(t, soonLate.AppointmentID, forPatient[1].AppointmentID)
	assert.Equal(t, later.AppointmentID, forPatient[2].AppointmentID)

	forDoctor, err := s.ListForDoctor(doctor.DoctorID, futureDate(1))
	require.NoError(t, err)
	require.Len(t, forDoctor, 2)
	assert.Equal(t, soonEarly.AppointmentID, forDoctor[0].AppointmentID)

	_, err = s.ListForDoctor(doctor.DoctorID, "not-a-date")
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}
