package models

import "time"

// Application links a student to an internship. The composite unique index
// enforces at most one application per (student, internship) pair; the
// service layer pre-checks the pair to return a clean conflict error before
// the database does.
type Application struct {
	ID           uint              `gorm:"primaryKey" json:"application_id"`
	StudentID    uint              `gorm:"not null;uniqueIndex:idx_student_internship" json:"student_id"`
	InternshipID uint              `gorm:"not null;uniqueIndex:idx_student_internship" json:"internship_id"`
	ResumePath   *string           `gorm:"size:512" json:"resume_path"`
	CoverLetter  *string           `gorm:"type:text" json:"cover_letter"`
	Status       ApplicationStatus `gorm:"size:20;not null;default:pending" json:"status"`
	AppliedAt    time.Time         `gorm:"autoCreateTime" json:"applied_at"`
}

// ApplicationWithStudent is the row a company sees when reviewing
// applicants for one of its internships.
type ApplicationWithStudent struct {
	Application
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Email      string   `json:"email"`
	Major      string   `json:"major"`
	University string   `json:"university"`
	GPA        *float64 `json:"gpa"`
}

// CompanyApplicationRow is the company review feed: one row per
// application across every internship the company owns, applicant and
// internship details joined in.
type CompanyApplicationRow struct {
	Application
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Email           string   `json:"email"`
	Major           string   `json:"major"`
	University      string   `json:"university"`
	GPA             *float64 `json:"gpa"`
	InternshipTitle string   `json:"internship_title"`
}

// ApplicationWithInternship is the row a student sees in their own
// application history.
type ApplicationWithInternship struct {
	Application
	InternshipTitle    string `json:"internship_title"`
	InternshipLocation string `json:"internship_location"`
	InternshipType     string `json:"internship_type"`
	CompanyName        string `json:"company_name"`
}
