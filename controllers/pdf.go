package controllers

import (
	"bytes"
	"fmt"

	"github.com/AdityaTidake/MedPlus/models"

	"github.com/jung-kurt/gofpdf"
)

// GeneratePrescriptionPDF renders the prescription for the patient's email
// copy.
func GeneratePrescriptionPDF(prescription *models.Prescription, doctorName, specialization, patientName string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "MedPlus - Prescription", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	addDetail(pdf, "Prescription ID:", fmt.Sprintf("%d", prescription.PrescriptionID), true)
	addDetail(pdf, "Doctor:", doctorName, false)
	addDetail(pdf, "Specialization:", specialization, false)
	addDetail(pdf, "Patient:", patientName, false)
	if prescription.Notes != "" {
		addDetail(pdf, "Notes:", prescription.Notes, false)
	}

	// Medicines table
	pdf.SetY(pdf.GetY() + 8)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(60, 8, "Medicine", "1", 0, "", false, 0, "")
	pdf.CellFormat(40, 8, "Dosage", "1", 0, "", false, 0, "")
	pdf.CellFormat(45, 8, "Frequency", "1", 0, "", false, 0, "")
	pdf.CellFormat(45, 8, "Duration", "1", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	for _, item := range prescription.Items {
		pdf.CellFormat(60, 8, item.MedicineName, "1", 0, "", false, 0, "")
		pdf.CellFormat(40, 8, item.Dosage, "1", 0, "", false, 0, "")
		pdf.CellFormat(45, 8, item.Frequency, "1", 0, "", false, 0, "")
		pdf.CellFormat(45, 8, item.Duration, "1", 1, "", false, 0, "")
	}

	pdf.SetFont("Arial", "", 10)
	pdf.SetY(pdf.GetY() + 10)
	pdf.MultiCell(0, 5, "Follow the instructions given by the doctor properly. Your health is all that matters!", "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateReceiptPDF renders the pharmacy receipt for a dispensed
// prescription.
func GenerateReceiptPDF(record *models.DispensaryRecord, prescription *models.Prescription, patientName string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "MedPlus - Pharmacy Receipt", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, "Receipt Details", "1", 1, "C", false, 0, "")
	addDetail(pdf, "Receipt Number:", record.ReceiptNumber, true)
	addDetail(pdf, "Prescription ID:", fmt.Sprintf("%d", prescription.PrescriptionID), false)
	addDetail(pdf, "Patient:", patientName, false)
	addDetail(pdf, "Dispensed At:", record.CreatedAt.Format("2006-01-02 15:04"), false)

	pdf.SetFont("Arial", "B", 13)
	addDetail(pdf, "Total Amount:", fmt.Sprintf("%.2f", record.TotalAmount), true)
	addDetail(pdf, "Payment Status:", record.PaymentStatus, true)

	pdf.SetFont("Arial", "", 10)
	pdf.SetY(pdf.GetY() + 12)
	pdf.CellFormat(0, 10, "This is a computer generated receipt", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// addDetail adds a label/value line to the PDF
func addDetail(pdf *gofpdf.Fpdf, label, value string, isHeader bool) {
	if isHeader {
		pdf.SetFont("Arial", "B", 12)
	} else {
		pdf.SetFont("Arial", "", 10)
	}
	pdf.CellFormat(45, 10, label, "1", 0, "", false, 0, "")
	pdf.CellFormat(0, 10, value, "1", 1, "", false, 0, "")
}
