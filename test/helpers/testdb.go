package helpers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateAndLoginCompany registers a company through the API and logs it
// in, returning the bearer token and the new company id.
func CreateAndLoginCompany(t *testing.T, ts *TestServer, name, email, password string) (string, uint) {
	t.Helper()

	signupBody := map[string]interface{}{
		"company_name": name,
		"email":        email,
		"password":     password,
		"location":     "Almaty",
		"industry":     "Software",
	}
	res, body := ts.SendRequest(t, http.MethodPost, "/api/company/signup", "", signupBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, "company signup should succeed: %s", body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/company/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "company login should succeed: %s", body)

	var login struct {
		Token     string `json:"token"`
		CompanyID uint   `json:"companyId"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &login))
	require.NotEmpty(t, login.Token)

	return login.Token, login.CompanyID
}

// CreateAndLoginStudent registers a student through the API and logs it
// in, returning the bearer token and the new student id.
func CreateAndLoginStudent(t *testing.T, ts *TestServer, firstName, lastName, email, password string) (string, uint) {
	t.Helper()

	signupBody := map[string]interface{}{
		"first_name": firstName,
		"last_name":  lastName,
		"email":      email,
		"password":   password,
		"major":      "Computer Science",
		"university": "KBTU",
		"gpa":        3.5,
	}
	res, body := ts.SendRequest(t, http.MethodPost, "/api/student/signup", "", signupBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, "student signup should succeed: %s", body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/student/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "student login should succeed: %s", body)

	var login struct {
		Token     string `json:"token"`
		StudentID uint   `json:"studentId"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &login))
	require.NotEmpty(t, login.Token)

	return login.Token, login.StudentID
}

// CreateInternship posts an internship with sensible defaults as the
// given company and returns its id.
func CreateInternship(t *testing.T, ts *TestServer, companyToken, title string) uint {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/internships", companyToken, map[string]interface{}{
		"title":           title,
		"location":        "Almaty",
		"type":            "On-site",
		"required_skills": "Go, SQL",
		"salary":          150000.0,
		"duration":        "3 months",
		"deadline":        "2026-12-31",
		"description":     "Backend internship working on the core API.",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "internship creation should succeed: %s", body)

	var created struct {
		InternshipID uint `json:"internshipId"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	require.NotZero(t, created.InternshipID)

	return created.InternshipID
}

// ApplyToInternship submits an application as the given student and
// returns the application id.
func ApplyToInternship(t *testing.T, ts *TestServer, studentToken string, internshipID uint) uint {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/applications", studentToken, map[string]interface{}{
		"internship_id": internshipID,
		"cover_letter":  "I would love to join your team.",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "application should succeed: %s", body)

	var created struct {
		ApplicationID uint `json:"applicationId"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	require.NotZero(t, created.ApplicationID)

	return created.ApplicationID
}
