package dto

// SaveInternshipRequest covers both create and full update; the update
// endpoint overwrites every mutable field with these values.
//
// CompanyID is accepted for compatibility with the original clients but
// ignored: ownership always comes from the token claims.
type SaveInternshipRequest struct {
	CompanyID      uint     `json:"company_id"`
	Title          string   `json:"title" binding:"required"`
	Location       string   `json:"location" binding:"required"`
	Type           string   `json:"type" binding:"required"`
	RequiredSkills string   `json:"required_skills"`
	Salary         *float64 `json:"salary" validate:"omitempty,gte=0"`
	Duration       string   `json:"duration" binding:"required"`
	Deadline       string   `json:"deadline" binding:"required" validate:"required,datetime=2006-01-02"`
	Description    string   `json:"description" binding:"required"`
}

type CreateInternshipResponse struct {
	Message      string `json:"message"`
	InternshipID uint   `json:"internshipId"`
}
