package controllers

import (
	"net/http"

	"github.com/AdityaTidake/MedPlus/models"

	"github.com/gin-gonic/gin"
)

// GetDoctors is the public directory used by the booking form: doctor id,
// user details, specialization and department.
func GetDoctors(c *gin.Context) {
	var doctors []models.Doctor
	if err := db.Preload("User").Find(&doctors).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}
