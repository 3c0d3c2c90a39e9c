package integration

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"internhub_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStudentProfile(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	_, studentID := helpers.CreateAndLoginStudent(t, ts, "Aigerim", "Bekova", "aigerim@uni.test", "secret123")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/student/profile/"+itoa(studentID), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var got struct {
		StudentID  uint     `json:"student_id"`
		FirstName  string   `json:"first_name"`
		Email      string   `json:"email"`
		University string   `json:"university"`
		GPA        *float64 `json:"gpa"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, studentID, got.StudentID)
	assert.Equal(t, "Aigerim", got.FirstName)
	assert.Equal(t, "aigerim@uni.test", got.Email)

	// The password hash must never leave the server.
	assert.False(t, strings.Contains(body, "password"), "profile payload must not leak password material: %s", body)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/student/profile/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestUpdateStudentProfile(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, studentID := helpers.CreateAndLoginStudent(t, ts, "Aigerim", "Bekova", "aigerim@uni.test", "secret123")
	otherToken, _ := helpers.CreateAndLoginStudent(t, ts, "Timur", "Akhmetov", "timur@uni.test", "secret123")

	profilePath := "/api/student/profile/" + itoa(studentID)

	t.Run("partial update only touches the sent fields", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPut, profilePath, token, map[string]interface{}{
			"major": "Software Engineering",
		})
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		res, body = ts.SendRequest(t, http.MethodGet, profilePath, "", nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		var got struct {
			FirstName string `json:"first_name"`
			Major     string `json:"major"`
			Email     string `json:"email"`
		}
		require.NoError(t, json.Unmarshal([]byte(body), &got))
		assert.Equal(t, "Software Engineering", got.Major)
		assert.Equal(t, "Aigerim", got.FirstName)
		assert.Equal(t, "aigerim@uni.test", got.Email)
	})

	t.Run("empty body gets 400", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPut, profilePath, token, map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	})

	t.Run("taking another student's email conflicts", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPut, profilePath, token, map[string]interface{}{
			"email": "timur@uni.test",
		})
		assert.Equal(t, http.StatusConflict, res.StatusCode, body)
	})

	t.Run("keeping your own email is not a conflict", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPut, profilePath, token, map[string]interface{}{
			"email": "aigerim@uni.test",
			"major": "Data Science",
		})
		assert.Equal(t, http.StatusOK, res.StatusCode, body)
	})

	t.Run("another student's token gets 403", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPut, profilePath, otherToken, map[string]interface{}{
			"major": "Hijacked",
		})
		assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
	})

	t.Run("gpa out of range gets 400", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPut, profilePath, token, map[string]interface{}{
			"gpa": 5.0,
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	})
}

func TestCompanyProfile(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, companyID := helpers.CreateAndLoginCompany(t, ts, "Acme", "acme@co.test", "secret123")
	profilePath := "/api/company/profile/" + itoa(companyID)

	t.Run("read is public", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, profilePath, "", nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		var got struct {
			CompanyID   uint   `json:"company_id"`
			CompanyName string `json:"company_name"`
		}
		require.NoError(t, json.Unmarshal([]byte(body), &got))
		assert.Equal(t, companyID, got.CompanyID)
		assert.Equal(t, "Acme", got.CompanyName)
	})

	t.Run("owner can update", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPut, profilePath, token, map[string]interface{}{
			"description": "We build rockets now.",
			"website":     "https://acme.example",
		})
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		res, body = ts.SendRequest(t, http.MethodGet, profilePath, "", nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		var got struct {
			Description string `json:"description"`
			Website     string `json:"website"`
		}
		require.NoError(t, json.Unmarshal([]byte(body), &got))
		assert.Equal(t, "We build rockets now.", got.Description)
		assert.Equal(t, "https://acme.example", got.Website)
	})

	t.Run("student token gets 403", func(t *testing.T) {
		studentToken, _ := helpers.CreateAndLoginStudent(t, ts, "Sana", "Li", "sana@uni.test", "secret123")
		res, body := ts.SendRequest(t, http.MethodPut, profilePath, studentToken, map[string]interface{}{
			"description": "nope",
		})
		assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
	})

	t.Run("unauthenticated update gets 401", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPut, profilePath, "", map[string]interface{}{
			"description": "nope",
		})
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)
	})
}
