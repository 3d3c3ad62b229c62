package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/AdityaTidake/MedPlus/configuration"
	"github.com/AdityaTidake/MedPlus/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory sqlite with the full schema. A single
// connection keeps every goroutine on the same database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, configuration.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, role, tag string) models.User {
	t.Helper()
	user := models.User{
		Name:     fmt.Sprintf("%s %s", role, tag),
		Email:    fmt.Sprintf("%s-%s@example.com", role, tag),
		Phone:    fmt.Sprintf("%s-%s", role, tag),
		Password: "hashed",
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedDoctor(t *testing.T, db *gorm.DB, tag string) models.Doctor {
	t.Helper()
	user := seedUser(t, db, models.RoleDoctor, tag)
	doctor := models.Doctor{UserID: user.UserID, Specialization: "General", Department: "General"}
	require.NoError(t, db.Create(&doctor).Error)
	return doctor
}

func seedPatient(t *testing.T, db *gorm.DB, tag string) models.Patient {
	t.Helper()
	user := seedUser(t, db, models.RolePatient, tag)
	patient := models.Patient{UserID: user.UserID}
	require.NoError(t, db.Create(&patient).Error)
	return patient
}

func seedPharmacist(t *testing.T, db *gorm.DB, tag string) models.Pharmacist {
	t.Helper()
	user := seedUser(t, db, models.RolePharmacist, tag)
	pharmacist := models.Pharmacist{UserID: user.UserID}
	require.NoError(t, db.Create(&pharmacist).Error)
	return pharmacist
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format(dateLayout)
}
