package dto

// CompanySignupRequest mirrors the company signup form. Optional profile
// fields may be filled in later via the profile endpoint.
type CompanySignupRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	Email       string `json:"email" binding:"required" validate:"required,email"`
	Password    string `json:"password" binding:"required" validate:"required,min=6"`
	Location    string `json:"location"`
	Industry    string `json:"industry"`
	Website     string `json:"website" validate:"omitempty,url"`
	Description string `json:"description"`
}

type StudentSignupRequest struct {
	FirstName  string   `json:"first_name" binding:"required"`
	LastName   string   `json:"last_name" binding:"required"`
	Email      string   `json:"email" binding:"required" validate:"required,email"`
	Password   string   `json:"password" binding:"required" validate:"required,min=6"`
	Major      string   `json:"major"`
	University string   `json:"university"`
	GPA        *float64 `json:"gpa" validate:"omitempty,gte=0,lte=4"`
	ResumePath string   `json:"resume_path"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CompanyAuthResponse keys follow the original wire format the clients
// expect (camelCase ids and names).
type CompanyAuthResponse struct {
	Message     string `json:"message"`
	CompanyID   uint   `json:"companyId"`
	CompanyName string `json:"companyName,omitempty"`
	Token       string `json:"token,omitempty"`
}

type StudentAuthResponse struct {
	Message     string `json:"message"`
	StudentID   uint   `json:"studentId"`
	StudentName string `json:"studentName,omitempty"`
	Token       string `json:"token,omitempty"`
}
