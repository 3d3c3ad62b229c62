package controllers

import (
	"fmt"
	"net/http"

	"github.com/AdityaTidake/MedPlus/authentication"
	"github.com/AdityaTidake/MedPlus/configuration"
	"github.com/AdityaTidake/MedPlus/models"

	"github.com/gin-gonic/gin"
)

type DispenseRequest struct {
	PrescriptionID int      `json:"prescription_id" binding:"required"`
	TotalAmount    *float64 `json:"total_amount" binding:"required"`
	PaymentStatus  string   `json:"payment_status"`
}

// resolvePharmacist maps the authenticated user onto their pharmacist
// record.
func resolvePharmacist(c *gin.Context) (*models.Pharmacist, bool) {
	userID := c.GetInt(authentication.ContextUserID)

	var pharmacist models.Pharmacist
	if err := db.Where("user_id = ?", userID).First(&pharmacist).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Pharmacist record not found"})
		return nil, false
	}
	return &pharmacist, true
}

// GetPendingPrescriptions returns the pharmacy queue, oldest first.
func GetPendingPrescriptions(c *gin.Context) {
	if _, ok := resolvePharmacist(c); !ok {
		return
	}

	pending, err := prescriptions.ListPending()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pending)
}

// DispensePrescription closes a pending prescription with the billed
// amount and emails the patient a receipt.
func DispensePrescription(c *gin.Context) {
	pharmacist, ok := resolvePharmacist(c)
	if !ok {
		return
	}

	var req DispenseRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	record, err := dispensary.Dispense(req.PrescriptionID, pharmacist.PharmacistID, *req.TotalAmount, req.PaymentStatus)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := mailReceipt(record); err != nil {
		configuration.Log.WithError(err).Warn("failed to email dispense receipt")
	}

	c.JSON(http.StatusCreated, record)
}

func mailReceipt(record *models.DispensaryRecord) error {
	prescription, err := prescriptions.Get(record.PrescriptionID)
	if err != nil {
		return err
	}
	var patient models.Patient
	if err := db.Preload("User").First(&patient, prescription.PatientID).Error; err != nil {
		return err
	}

	pdf, err := GenerateReceiptPDF(record, prescription, patient.User.Name)
	if err != nil {
		return err
	}
	return SendEmail(
		"Pharmacy receipt",
		fmt.Sprintf("Your prescription has been dispensed. Amount: %.2f (%s).", record.TotalAmount, record.PaymentStatus),
		patient.User.Email,
		"receipt.pdf",
		pdf,
	)
}
