package models

type Doctor struct {
	DoctorID       int    `json:"id" gorm:"primaryKey"`
	UserID         int    `json:"user_id" gorm:"unique;not null"`
	User           User   `json:"user" gorm:"foreignKey:UserID"`
	Specialization string `json:"specialization" gorm:"not null"`
	Department     string `json:"department" gorm:"not null"`
}
