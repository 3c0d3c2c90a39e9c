package handlers

import (
	"net/http"

	"internhub_backend/internal/services"
	"internhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accountService services.AccountService
	base           *BaseHandler
}

func NewAccountHandler(accountService services.AccountService, base *BaseHandler) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		base:           base,
	}
}

// RegisterRoutes wires the signup/login endpoints for both account kinds.
func (h *AccountHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/company/signup", h.CompanySignup)
	api.POST("/company/login", h.CompanyLogin)
	api.POST("/student/signup", h.StudentSignup)
	api.POST("/student/login", h.StudentLogin)
}

// CompanySignup godoc
// @Summary Register a new company account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.CompanySignupRequest true "Company registration data"
// @Success 201 {object} dto.CompanyAuthResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /api/company/signup [post]
func (h *AccountHandler) CompanySignup(c *gin.Context) {
	var req dto.CompanySignupRequest
	if !h.base.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.accountService.SignupCompany(h.base.GetDB(c), &req)
	if err != nil {
		h.base.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// CompanyLogin godoc
// @Summary Authenticate a company and issue a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.CompanyAuthResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /api/company/login [post]
func (h *AccountHandler) CompanyLogin(c *gin.Context) {
	var req dto.LoginRequest
	if !h.base.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.accountService.LoginCompany(h.base.GetDB(c), &req)
	if err != nil {
		h.base.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// StudentSignup godoc
// @Summary Register a new student account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.StudentSignupRequest true "Student registration data"
// @Success 201 {object} dto.StudentAuthResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /api/student/signup [post]
func (h *AccountHandler) StudentSignup(c *gin.Context) {
	var req dto.StudentSignupRequest
	if !h.base.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.accountService.SignupStudent(h.base.GetDB(c), &req)
	if err != nil {
		h.base.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// StudentLogin godoc
// @Summary Authenticate a student and issue a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.StudentAuthResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /api/student/login [post]
func (h *AccountHandler) StudentLogin(c *gin.Context) {
	var req dto.LoginRequest
	if !h.base.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.accountService.LoginStudent(h.base.GetDB(c), &req)
	if err != nil {
		h.base.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
