package models

type Patient struct {
	PatientID int    `json:"id" gorm:"primaryKey"`
	UserID    int    `json:"user_id" gorm:"unique;not null"`
	User      User   `json:"user" gorm:"foreignKey:UserID"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
}

type VerifyOTP struct {
	Phone string `json:"phone"`
	Otp   string `json:"otp"`
}
