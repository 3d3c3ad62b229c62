package routes

import (
	"net/http"

	"github.com/AdityaTidake/MedPlus/authentication"
	"github.com/AdityaTidake/MedPlus/configuration"
	"github.com/AdityaTidake/MedPlus/controllers"
	"github.com/AdityaTidake/MedPlus/models"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(configuration.RequestLogger(), gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "MedPlus API - Hospital Management System"})
	})

	// public
	r.POST("/auth/signup", controllers.Signup)
	r.POST("/auth/verify", controllers.VerifySignupOTP)
	r.POST("/auth/login", controllers.Login)
	r.GET("/doctors", controllers.GetDoctors)
	r.POST("/chatbot/message", controllers.ChatbotMessage)

	r.GET("/auth/me", authentication.AuthMiddleware(), controllers.Me)

	patient := r.Group("/patient")
	patient.Use(authentication.AuthMiddleware(models.RolePatient))
	{
		patient.GET("/appointments", controllers.GetPatientAppointments)
		patient.POST("/appointments", controllers.BookAppointment)
		patient.DELETE("/appointments/:id", controllers.CancelAppointment)
	}

	doctor := r.Group("/doctor")
	doctor.Use(authentication.AuthMiddleware(models.RoleDoctor))
	{
		doctor.GET("/appointments", controllers.GetDoctorAppointments)
		doctor.PUT("/appointments/:id/complete", controllers.CompleteAppointment)
		doctor.POST("/prescriptions", controllers.CreatePrescription)
	}

	pharmacy := r.Group("/pharmacy")
	pharmacy.Use(authentication.AuthMiddleware(models.RolePharmacist))
	{
		pharmacy.GET("/prescriptions", controllers.GetPendingPrescriptions)
		pharmacy.POST("/dispense", controllers.DispensePrescription)
	}

	admin := r.Group("/admin")
	admin.Use(authentication.AuthMiddleware(models.RoleAdmin))
	{
		admin.GET("/stats", controllers.GetHospitalStats)
		admin.GET("/doctors", controllers.GetAllDoctors)
		admin.GET("/pharmacists", controllers.GetAllPharmacists)
		admin.DELETE("/doctors/:id", controllers.DeleteDoctor)
	}

	return r
}
