package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/AdityaTidake/MedPlus/authentication"
	"github.com/AdityaTidake/MedPlus/configuration"
	"github.com/AdityaTidake/MedPlus/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var validate = validator.New()

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup registers a new user with a role record. Patients go through SMS
// OTP verification first: the pending record is parked in redis and only
// written to the database once VerifySignupOTP confirms the code.
func Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Please fill all the mandatory fields"})
		return
	}
	if !models.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Unknown role"})
		return
	}

	var existing models.User
	if err := db.Where("email = ? OR phone = ?", req.Email, req.Phone).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"detail": "Email or phone already registered"})
		return
	} else if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to hash password"})
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: string(hashed),
		Role:     req.Role,
	}

	if req.Role == models.RolePatient && configuration.Client != nil {
		pending, err := json.Marshal(&user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to stage signup"})
			return
		}
		key := fmt.Sprintf("signup:%s", user.Phone)
		if err := configuration.SetRedis(key, pending, time.Minute*5); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to stage signup"})
			return
		}
		if err := SendOTP(user.Phone); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to send OTP"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "OTP sent. Proceed to verification."})
		return
	}

	created, err := createUserWithRole(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create user"})
		return
	}
	issueToken(c, http.StatusCreated, created)
}

// VerifySignupOTP checks the SMS code and promotes the staged patient
// signup into real user and patient records.
func VerifySignupOTP(c *gin.Context) {
	var req models.VerifyOTP
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if req.Otp == "" || req.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Phone and OTP are required"})
		return
	}

	if err := CheckOTP(req.Phone, req.Otp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Wrong OTP provided"})
		return
	}

	key := fmt.Sprintf("signup:%s", req.Phone)
	staged, err := configuration.GetRedis(key)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "No pending signup for this phone, sign up again"})
		return
	}

	var user models.User
	if err := json.Unmarshal([]byte(staged), &user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to read staged signup"})
		return
	}

	created, err := createUserWithRole(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create user"})
		return
	}

	if err := configuration.DelRedis(key); err != nil {
		configuration.Log.WithError(err).Warn("failed to clear staged signup")
	}
	issueToken(c, http.StatusCreated, created)
}

// Login checks the credentials and returns a bearer token with the user.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Incorrect email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Incorrect email or password"})
		return
	}

	issueToken(c, http.StatusOK, user)
}

// Me returns the acting user.
func Me(c *gin.Context) {
	userID := c.GetInt(authentication.ContextUserID)

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// createUserWithRole writes the user row and its role-specific record in
// one transaction. Doctors start in the General department until admin
// updates the roster.
func createUserWithRole(user models.User) (models.User, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		switch user.Role {
		case models.RoleDoctor:
			return tx.Create(&models.Doctor{UserID: user.UserID, Specialization: "General", Department: "General"}).Error
		case models.RolePatient:
			return tx.Create(&models.Patient{UserID: user.UserID}).Error
		case models.RolePharmacist:
			return tx.Create(&models.Pharmacist{UserID: user.UserID}).Error
		}
		return nil
	})
	return user, err
}

func issueToken(c *gin.Context, status int, user models.User) {
	token, err := authentication.GenerateToken(user.UserID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to generate token"})
		return
	}
	c.JSON(status, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user,
	})
}
