package apperrors

import "net/http"

// Predefined errors for the marketplace domain. Handlers and services reuse
// these instead of constructing ad-hoc errors so that messages stay uniform
// across endpoints (the login failure message in particular must not leak
// whether the account exists).

var (
	// ErrInvalidCredentials covers both "no such account" and "wrong
	// password". The two paths must be indistinguishable to the caller.
	ErrInvalidCredentials = New(
		CodeInvalidCredentials,
		"auth",
		"Invalid credentials.",
		http.StatusUnauthorized,
	)

	ErrEmailAlreadyExists = New(
		CodeAlreadyExists,
		"account",
		"An account with this email already exists.",
		http.StatusConflict,
	)

	ErrEmailTaken = New(
		CodeConflict,
		"profile",
		"Email already taken by another account.",
		http.StatusConflict,
	)

	ErrWeakPassword = New(
		CodeValidationFailed,
		"account",
		"Password must be at least 6 characters long.",
		http.StatusBadRequest,
	)

	ErrCompanyNotFound = New(
		CodeNotFound,
		"company",
		"Company profile not found.",
		http.StatusNotFound,
	)

	ErrStudentNotFound = New(
		CodeNotFound,
		"student",
		"Student profile not found.",
		http.StatusNotFound,
	)

	ErrInternshipNotFound = New(
		CodeNotFound,
		"internship",
		"Internship not found.",
		http.StatusNotFound,
	)

	ErrApplicationNotFound = New(
		CodeNotFound,
		"application",
		"Application not found.",
		http.StatusNotFound,
	)

	ErrAlreadyApplied = New(
		CodeConflict,
		"application",
		"You have already applied to this internship.",
		http.StatusConflict,
	)

	ErrNotInternshipOwner = New(
		CodeForbidden,
		"internship",
		"This internship does not belong to your company.",
		http.StatusForbidden,
	)

	ErrInvalidApplicationStatus = New(
		CodeInvalidStatus,
		"application",
		"Invalid status. Must be one of: pending, shortlisted, accepted, rejected.",
		http.StatusBadRequest,
	)

	ErrNoUpdateFields = New(
		CodeValidationFailed,
		"profile",
		"No update fields provided.",
		http.StatusBadRequest,
	)
)

// ErrNotFound wraps a repository miss (e.g. gorm.ErrRecordNotFound) into a
// generic 404 when no resource-specific variable fits.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}
