package models

import "time"

// Company is one of the two account kinds. Email is unique within
// companies only; a student may register the same address.
type Company struct {
	ID           uint      `gorm:"primaryKey" json:"company_id"`
	CompanyName  string    `gorm:"size:255;not null" json:"company_name"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Location     string    `gorm:"size:255" json:"location"`
	Industry     string    `gorm:"size:255" json:"industry"`
	Website      string    `gorm:"size:255" json:"website"`
	Description  string    `gorm:"type:text" json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}
