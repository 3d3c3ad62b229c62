package controllers

import (
	"net/http"
	"strconv"

	"github.com/AdityaTidake/MedPlus/authentication"
	"github.com/AdityaTidake/MedPlus/models"

	"github.com/gin-gonic/gin"
)

type BookAppointmentRequest struct {
	DoctorID int    `json:"doctor_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
}

// resolvePatient maps the authenticated user onto their patient record.
func resolvePatient(c *gin.Context) (*models.Patient, bool) {
	userID := c.GetInt(authentication.ContextUserID)

	var patient models.Patient
	if err := db.Where("user_id = ?", userID).First(&patient).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Patient record not found"})
		return nil, false
	}
	return &patient, true
}

// BookAppointment books a slot with the doctor and returns the created
// appointment including its queue token.
func BookAppointment(c *gin.Context) {
	patient, ok := resolvePatient(c)
	if !ok {
		return
	}

	var req BookAppointmentRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	appointment, err := scheduler.Book(patient.PatientID, req.DoctorID, req.Date, req.Time)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

// GetPatientAppointments lists the patient's appointments, soonest first.
func GetPatientAppointments(c *gin.Context) {
	patient, ok := resolvePatient(c)
	if !ok {
		return
	}

	appointments, err := scheduler.ListForPatient(patient.PatientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// CancelAppointment cancels one of the patient's scheduled appointments.
func CancelAppointment(c *gin.Context) {
	patient, ok := resolvePatient(c)
	if !ok {
		return
	}

	appointmentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid appointment id"})
		return
	}

	appointment, err := scheduler.Cancel(appointmentID, patient.PatientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Appointment cancelled successfully",
		"appointment": appointment,
	})
}
