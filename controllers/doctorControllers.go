package controllers

import (
	"net/http"
	"strconv"

	"github.com/AdityaTidake/MedPlus/authentication"
	"github.com/AdityaTidake/MedPlus/configuration"
	"github.com/AdityaTidake/MedPlus/models"
	"github.com/AdityaTidake/MedPlus/services"

	"github.com/gin-gonic/gin"
)

type CreatePrescriptionRequest struct {
	AppointmentID int                              `json:"appointment_id" binding:"required"`
	Notes         string                           `json:"notes"`
	Items         []services.PrescriptionItemInput `json:"items"`
}

// resolveDoctor maps the authenticated user onto their roster record.
func resolveDoctor(c *gin.Context) (*models.Doctor, bool) {
	userID := c.GetInt(authentication.ContextUserID)

	var doctor models.Doctor
	if err := db.Where("user_id = ?", userID).First(&doctor).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Doctor record not found"})
		return nil, false
	}
	return &doctor, true
}

// GetDoctorAppointments lists the doctor's appointments, optionally
// filtered by ?date=YYYY-MM-DD, ordered by date, time and token.
func GetDoctorAppointments(c *gin.Context) {
	doctor, ok := resolveDoctor(c)
	if !ok {
		return
	}

	appointments, err := scheduler.ListForDoctor(doctor.DoctorID, c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// CompleteAppointment marks one of the doctor's scheduled appointments as
// completed.
func CompleteAppointment(c *gin.Context) {
	doctor, ok := resolveDoctor(c)
	if !ok {
		return
	}

	appointmentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid appointment id"})
		return
	}

	appointment, err := scheduler.Complete(appointmentID, doctor.DoctorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Appointment marked as completed",
		"appointment": appointment,
	})
}

// CreatePrescription writes a pending prescription for one of the doctor's
// appointments and emails the patient a PDF copy.
func CreatePrescription(c *gin.Context) {
	doctor, ok := resolveDoctor(c)
	if !ok {
		return
	}

	var req CreatePrescriptionRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	prescription, err := prescriptions.Create(req.AppointmentID, doctor.DoctorID, req.Notes, req.Items)
	if err != nil {
		respondError(c, err)
		return
	}

	// Best effort: the prescription is already committed, a mail problem
	// must not fail the request.
	if err := mailPrescription(prescription, doctor); err != nil {
		configuration.Log.WithError(err).Warn("failed to email prescription")
	}

	c.JSON(http.StatusCreated, prescription)
}

func mailPrescription(prescription *models.Prescription, doctor *models.Doctor) error {
	var patient models.Patient
	if err := db.Preload("User").First(&patient, prescription.PatientID).Error; err != nil {
		return err
	}
	var doctorUser models.User
	if err := db.First(&doctorUser, doctor.UserID).Error; err != nil {
		return err
	}

	pdf, err := GeneratePrescriptionPDF(prescription, doctorUser.Name, doctor.Specialization, patient.User.Name)
	if err != nil {
		return err
	}
	return SendEmail(
		"Your prescription",
		"Please find your prescription attached.",
		patient.User.Email,
		"prescription.pdf",
		pdf,
	)
}
