package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"internhub_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveInternshipBody(title string) map[string]interface{} {
	return map[string]interface{}{
		"title":           title,
		"location":        "Almaty",
		"type":            "Remote",
		"required_skills": "Go, SQL",
		"salary":          200000.0,
		"duration":        "6 months",
		"deadline":        "2026-11-30",
		"description":     "Work on the internship marketplace backend.",
	}
}

func TestCreateAndGetInternship(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, companyID := helpers.CreateAndLoginCompany(t, ts, "Acme", "acme@co.test", "secret123")
	internshipID := helpers.CreateInternship(t, ts, token, "Backend Intern")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/internships/"+itoa(internshipID), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var got struct {
		InternshipID uint   `json:"internship_id"`
		CompanyID    uint   `json:"company_id"`
		Title        string `json:"title"`
		Status       string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, internshipID, got.InternshipID)
	assert.Equal(t, companyID, got.CompanyID)
	assert.Equal(t, "Backend Intern", got.Title)
}

func TestGetUnknownInternshipReturns404(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	res, body := ts.SendRequest(t, http.MethodGet, "/api/internships/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
}

func TestCreateInternshipRequiresCompanyToken(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	t.Run("unauthenticated", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/internships", "", saveInternshipBody("Nope"))
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)
	})

	t.Run("student token", func(t *testing.T) {
		studentToken, _ := helpers.CreateAndLoginStudent(t, ts, "Sana", "Li", "sana@uni.test", "secret123")
		res, body := ts.SendRequest(t, http.MethodPost, "/api/internships", studentToken, saveInternshipBody("Nope"))
		assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
	})
}

func TestCreateInternshipValidation(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, _ := helpers.CreateAndLoginCompany(t, ts, "Acme", "acme@co.test", "secret123")

	t.Run("bad deadline format", func(t *testing.T) {
		payload := saveInternshipBody("Bad Deadline")
		payload["deadline"] = "31-12-2026"
		res, body := ts.SendRequest(t, http.MethodPost, "/api/internships", token, payload)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	})

	t.Run("missing title", func(t *testing.T) {
		payload := saveInternshipBody("")
		delete(payload, "title")
		res, body := ts.SendRequest(t, http.MethodPost, "/api/internships", token, payload)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	})

	t.Run("negative salary", func(t *testing.T) {
		payload := saveInternshipBody("Negative Salary")
		payload["salary"] = -100.0
		res, body := ts.SendRequest(t, http.MethodPost, "/api/internships", token, payload)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	})
}

func TestListInternshipsByCompany(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, companyID := helpers.CreateAndLoginCompany(t, ts, "Acme", "acme@co.test", "secret123")
	otherToken, _ := helpers.CreateAndLoginCompany(t, ts, "Other", "other@co.test", "secret123")

	helpers.CreateInternship(t, ts, token, "First")
	helpers.CreateInternship(t, ts, token, "Second")
	helpers.CreateInternship(t, ts, otherToken, "Unrelated")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/internships/company/"+itoa(companyID), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var rows []struct {
		CompanyID uint   `json:"company_id"`
		Title     string `json:"title"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &rows))
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, companyID, row.CompanyID)
	}

	// Company with no internships gets an empty array, not a 404.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/internships/company/9999", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, "[]", body)
}

func TestListAllInternshipsIncludesCompanyName(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, _ := helpers.CreateAndLoginCompany(t, ts, "Acme Robotics", "acme@co.test", "secret123")
	helpers.CreateInternship(t, ts, token, "Robotics Intern")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/internships/all", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var rows []struct {
		Title       string `json:"title"`
		CompanyName string `json:"company_name"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Robotics Intern", rows[0].Title)
	assert.Equal(t, "Acme Robotics", rows[0].CompanyName)
}

func TestUpdateInternship(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, _ := helpers.CreateAndLoginCompany(t, ts, "Acme", "acme@co.test", "secret123")
	otherToken, _ := helpers.CreateAndLoginCompany(t, ts, "Rival", "rival@co.test", "secret123")
	internshipID := helpers.CreateInternship(t, ts, token, "Original Title")

	t.Run("owner can update and the change is visible", func(t *testing.T) {
		payload := saveInternshipBody("Updated Title")
		res, body := ts.SendRequest(t, http.MethodPut, "/api/internships/"+itoa(internshipID), token, payload)
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		res, body = ts.SendRequest(t, http.MethodGet, "/api/internships/"+itoa(internshipID), "", nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		var got struct {
			Title string `json:"title"`
		}
		require.NoError(t, json.Unmarshal([]byte(body), &got))
		assert.Equal(t, "Updated Title", got.Title)
	})

	t.Run("non-owner gets 403", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPut, "/api/internships/"+itoa(internshipID), otherToken, saveInternshipBody("Hijacked"))
		assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
	})

	t.Run("unknown id gets 404", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPut, "/api/internships/9999", token, saveInternshipBody("Ghost"))
		assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
	})
}

func TestDeleteInternship(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, _ := helpers.CreateAndLoginCompany(t, ts, "Acme", "acme@co.test", "secret123")
	otherToken, _ := helpers.CreateAndLoginCompany(t, ts, "Rival", "rival@co.test", "secret123")
	internshipID := helpers.CreateInternship(t, ts, token, "Doomed")

	t.Run("non-owner gets 403", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodDelete, "/api/internships/"+itoa(internshipID), otherToken, nil)
		assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
	})

	t.Run("owner can delete, then the internship is gone", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodDelete, "/api/internships/"+itoa(internshipID), token, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		res, _ = ts.SendRequest(t, http.MethodGet, "/api/internships/"+itoa(internshipID), "", nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("deleting again gets 404", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodDelete, "/api/internships/"+itoa(internshipID), token, nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
	})
}
