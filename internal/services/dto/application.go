package dto

// ApplyRequest is the student application submission. StudentID is
// accepted for compatibility and ignored in favour of the token claims.
type ApplyRequest struct {
	StudentID    uint    `json:"student_id"`
	InternshipID uint    `json:"internship_id" binding:"required"`
	ResumePath   *string `json:"resume_path"`
	CoverLetter  *string `json:"cover_letter"`
}

type ApplyResponse struct {
	Message       string `json:"message"`
	ApplicationID uint   `json:"applicationId"`
}

// UpdateStatusRequest changes an application's review state. CompanyID is
// compatibility-only; the status value is validated against the
// enumerated set in the service, not here, so an unknown value produces
// the domain-specific 400 rather than a generic validation payload.
type UpdateStatusRequest struct {
	Status    string `json:"status" binding:"required"`
	CompanyID uint   `json:"company_id"`
}
