package models

import "time"

type Student struct {
	ID           uint   `gorm:"primaryKey" json:"student_id"`
	FirstName    string `gorm:"size:255;not null" json:"first_name"`
	LastName     string `gorm:"size:255;not null" json:"last_name"`
	Email        string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Major        string `gorm:"size:255" json:"major"`
	University   string `gorm:"size:255" json:"university"`
	// GPA is on a 4.00 scale; nil when the student has not provided one.
	GPA        *float64  `gorm:"type:decimal(3,2)" json:"gpa"`
	ResumePath string    `gorm:"size:512" json:"resume_path"`
	CreatedAt  time.Time `json:"created_at"`
}

// FullName is the display name shown to companies and in token claims.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
