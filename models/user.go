package models

import "github.com/golang-jwt/jwt/v5"

// Roles recognised by the portal
const (
	RoleAdmin      = "admin"
	RoleDoctor     = "doctor"
	RolePatient    = "patient"
	RolePharmacist = "pharmacist"
)

type User struct {
	UserID   int    `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null" validate:"required"`
	Email    string `json:"email" gorm:"unique;not null" validate:"required,email"`
	Phone    string `json:"phone" gorm:"not null" validate:"required"`
	Password string `json:"-" gorm:"not null"`
	Role     string `json:"role" gorm:"not null" validate:"required"`
}

type UserClaims struct {
	UserID int    `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// ValidRole reports whether role is one of the four portal roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleDoctor, RolePatient, RolePharmacist:
		return true
	}
	return false
}
