package dto

// Profile updates are partial: nil means "leave untouched", a set pointer
// (including one pointing at an empty string) means "overwrite". At least
// one field must be set.

type UpdateStudentProfileRequest struct {
	FirstName  *string  `json:"first_name"`
	LastName   *string  `json:"last_name"`
	Email      *string  `json:"email" validate:"omitempty,email"`
	Major      *string  `json:"major"`
	University *string  `json:"university"`
	GPA        *float64 `json:"gpa" validate:"omitempty,gte=0,lte=4"`
	ResumePath *string  `json:"resume_path"`
}

// Fields returns the column map for the update statement, containing only
// the fields the caller actually sent.
func (r *UpdateStudentProfileRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.FirstName != nil {
		fields["first_name"] = *r.FirstName
	}
	if r.LastName != nil {
		fields["last_name"] = *r.LastName
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.Major != nil {
		fields["major"] = *r.Major
	}
	if r.University != nil {
		fields["university"] = *r.University
	}
	if r.GPA != nil {
		fields["gpa"] = *r.GPA
	}
	if r.ResumePath != nil {
		fields["resume_path"] = *r.ResumePath
	}
	return fields
}

type UpdateCompanyProfileRequest struct {
	CompanyName *string `json:"company_name"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Location    *string `json:"location"`
	Industry    *string `json:"industry"`
	Website     *string `json:"website" validate:"omitempty,url"`
	Description *string `json:"description"`
}

func (r *UpdateCompanyProfileRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.CompanyName != nil {
		fields["company_name"] = *r.CompanyName
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.Location != nil {
		fields["location"] = *r.Location
	}
	if r.Industry != nil {
		fields["industry"] = *r.Industry
	}
	if r.Website != nil {
		fields["website"] = *r.Website
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	return fields
}
