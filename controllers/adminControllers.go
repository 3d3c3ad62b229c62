package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/AdityaTidake/MedPlus/configuration"
	"github.com/AdityaTidake/MedPlus/services"

	"github.com/gin-gonic/gin"
)

const statsCacheKey = "admin:stats"

// GetHospitalStats returns the aggregate counts, served from a short-lived
// redis cache when available.
func GetHospitalStats(c *gin.Context) {
	if configuration.Client != nil {
		if cached, err := configuration.GetRedis(statsCacheKey); err == nil {
			var stats services.HospitalStats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				c.JSON(http.StatusOK, stats)
				return
			}
		}
	}

	stats, err := admin.Stats()
	if err != nil {
		respondError(c, err)
		return
	}

	if configuration.Client != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := configuration.SetRedis(statsCacheKey, payload, time.Minute); err != nil {
				configuration.Log.WithError(err).Warn("failed to cache stats")
			}
		}
	}

	c.JSON(http.StatusOK, stats)
}

// GetAllDoctors returns the roster for the admin dashboard.
func GetAllDoctors(c *gin.Context) {
	doctors, err := admin.ListDoctors()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// GetAllPharmacists returns the pharmacist list for the admin dashboard.
func GetAllPharmacists(c *gin.Context) {
	pharmacists, err := admin.ListPharmacists()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pharmacists)
}

// DeleteDoctor removes a doctor from the roster. Refused while scheduled
// appointments remain.
func DeleteDoctor(c *gin.Context) {
	doctorID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid doctor id"})
		return
	}

	if err := admin.RemoveDoctor(doctorID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor deleted successfully"})
}
