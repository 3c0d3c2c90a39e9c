package models

import (
	"time"

	"gorm.io/datatypes"
)

type Internship struct {
	ID             uint   `gorm:"primaryKey" json:"internship_id"`
	CompanyID      uint   `gorm:"not null;index" json:"company_id"`
	Title          string `gorm:"size:255;not null" json:"title"`
	Location       string `gorm:"size:255;not null" json:"location"`
	Type           string `gorm:"size:100;not null" json:"type"`
	RequiredSkills string `gorm:"type:text" json:"required_skills"`
	// Salary is nil when unpaid/undisclosed; never negative.
	Salary      *float64       `json:"salary"`
	Duration    string         `gorm:"size:100;not null" json:"duration"`
	Deadline    datatypes.Date `gorm:"not null" json:"deadline"`
	Description string         `gorm:"type:text;not null" json:"description"`
	PostedAt    time.Time      `gorm:"autoCreateTime" json:"posted_at"`
}

// InternshipWithCompany is the listing row for the public browse view.
type InternshipWithCompany struct {
	Internship
	CompanyName string `json:"company_name"`
}
