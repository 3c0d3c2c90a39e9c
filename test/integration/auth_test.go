package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"internhub_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanySignupAndLogin(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/company/signup", "", map[string]interface{}{
		"company_name": "Acme Robotics",
		"email":        "hr@acme.test",
		"password":     "secret123",
		"location":     "Astana",
		"industry":     "Robotics",
		"website":      "https://acme.test",
		"description":  "We build robots.",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var signup struct {
		Message   string `json:"message"`
		CompanyID uint   `json:"companyId"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &signup))
	assert.NotZero(t, signup.CompanyID)
	assert.Contains(t, signup.Message, "registered successfully")

	res, body = ts.SendRequest(t, http.MethodPost, "/api/company/login", "", map[string]interface{}{
		"email":    "hr@acme.test",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var login struct {
		CompanyID   uint   `json:"companyId"`
		CompanyName string `json:"companyName"`
		Token       string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &login))
	assert.Equal(t, signup.CompanyID, login.CompanyID)
	assert.Equal(t, "Acme Robotics", login.CompanyName)
	assert.NotEmpty(t, login.Token)
}

func TestStudentSignupAndLogin(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/student/signup", "", map[string]interface{}{
		"first_name": "Aigerim",
		"last_name":  "Bekova",
		"email":      "aigerim@uni.test",
		"password":   "secret123",
		"major":      "Computer Science",
		"university": "KBTU",
		"gpa":        3.8,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var signup struct {
		StudentID uint `json:"studentId"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &signup))
	assert.NotZero(t, signup.StudentID)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/student/login", "", map[string]interface{}{
		"email":    "aigerim@uni.test",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var login struct {
		StudentID   uint   `json:"studentId"`
		StudentName string `json:"studentName"`
		Token       string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &login))
	assert.Equal(t, signup.StudentID, login.StudentID)
	assert.Equal(t, "Aigerim Bekova", login.StudentName)
	assert.NotEmpty(t, login.Token)
}

func TestDuplicateEmailWithinKindConflicts(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	helpers.CreateAndLoginCompany(t, ts, "First Co", "shared@mail.test", "secret123")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/company/signup", "", map[string]interface{}{
		"company_name": "Second Co",
		"email":        "shared@mail.test",
		"password":     "secret123",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)
}

func TestSameEmailAcrossKindsIsAllowed(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	helpers.CreateAndLoginCompany(t, ts, "Dual Co", "dual@mail.test", "secret123")

	// A student may register with an email already used by a company.
	res, body := ts.SendRequest(t, http.MethodPost, "/api/student/signup", "", map[string]interface{}{
		"first_name": "Dana",
		"last_name":  "Kim",
		"email":      "dual@mail.test",
		"password":   "secret123",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, body)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	helpers.CreateAndLoginStudent(t, ts, "Timur", "Akhmetov", "timur@uni.test", "secret123")

	// Wrong password and unknown email must be indistinguishable.
	res, wrongPass := ts.SendRequest(t, http.MethodPost, "/api/student/login", "", map[string]interface{}{
		"email":    "timur@uni.test",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, unknownEmail := ts.SendRequest(t, http.MethodPost, "/api/student/login", "", map[string]interface{}{
		"email":    "nobody@uni.test",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	var a, b struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal([]byte(wrongPass), &a))
	require.NoError(t, json.Unmarshal([]byte(unknownEmail), &b))
	assert.Equal(t, a.Message, b.Message)
	assert.Equal(t, "Invalid credentials.", a.Message)
}

func TestSignupValidation(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	t.Run("short password", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/company/signup", "", map[string]interface{}{
			"company_name": "Shorty",
			"email":        "short@mail.test",
			"password":     "123",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	})

	t.Run("missing required fields", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/student/signup", "", map[string]interface{}{
			"first_name": "NoEmail",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	})

	t.Run("gpa out of range", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/student/signup", "", map[string]interface{}{
			"first_name": "Bad",
			"last_name":  "GPA",
			"email":      "badgpa@uni.test",
			"password":   "secret123",
			"gpa":        4.5,
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	})
}
