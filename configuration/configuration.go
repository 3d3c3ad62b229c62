package configuration

import (
	"os"

	"github.com/AdityaTidake/MedPlus/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// hold connection to db
var DB *gorm.DB

// initializing db connection
func ConfigDB() {

	if err := godotenv.Load(".env"); err != nil {
		Log.Warn("No .env file found, reading configuration from environment")
	}
	dsn := os.Getenv("DB")
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		Log.WithError(err).Fatal("Failed to connect to the database")
	}

	if err := Migrate(DB); err != nil {
		Log.WithError(err).Fatal("Failed to migrate database schema")
	}
}

// Migrate creates or updates the tables for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Doctor{},
		&models.Patient{},
		&models.Pharmacist{},
		&models.Appointment{},
		&models.Prescription{},
		&models.PrescriptionItem{},
		&models.DispensaryRecord{},
	)
}
