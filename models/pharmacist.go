package models

type Pharmacist struct {
	PharmacistID int  `json:"id" gorm:"primaryKey"`
	UserID       int  `json:"user_id" gorm:"unique;not null"`
	User         User `json:"user" gorm:"foreignKey:UserID"`
}
