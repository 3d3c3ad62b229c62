package controllers

import (
	"github.com/AdityaTidake/MedPlus/services"

	"gorm.io/gorm"
)

var (
	db            *gorm.DB
	scheduler     *services.SchedulerService
	prescriptions *services.PrescriptionService
	dispensary    *services.DispensaryService
	admin         *services.AdminService
)

// Setup wires the controllers to the database. Called once at startup, and
// by tests with their own database handle.
func Setup(database *gorm.DB) {
	db = database
	scheduler = services.NewSchedulerService(database)
	prescriptions = services.NewPrescriptionService(database)
	dispensary = services.NewDispensaryService(database)
	admin = services.NewAdminService(database)
}
