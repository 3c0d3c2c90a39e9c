package handlers

import (
	"net/http"

	"internhub_backend/internal/middleware"
	"internhub_backend/internal/models"
	"internhub_backend/internal/services"
	"internhub_backend/internal/services/dto"
	"internhub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService services.ProfileService
	base           *BaseHandler
}

func NewProfileHandler(profileService services.ProfileService, base *BaseHandler) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		base:           base,
	}
}

// RegisterRoutes wires the profile endpoints. Reads are public, updates
// require a matching token.
func (h *ProfileHandler) RegisterRoutes(api *gin.RouterGroup, authRequired gin.HandlerFunc) {
	api.GET("/student/profile/:id", h.GetStudent)
	api.GET("/company/profile/:id", h.GetCompany)

	api.PUT("/student/profile/:id", authRequired, middleware.RequireKind(models.AccountKindStudent), h.UpdateStudent)
	api.PUT("/company/profile/:id", authRequired, middleware.RequireKind(models.AccountKindCompany), h.UpdateCompany)
}

// GetStudent godoc
// @Summary Read a student profile
// @Tags profiles
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} models.Student
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/student/profile/{id} [get]
func (h *ProfileHandler) GetStudent(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.base.HandleServiceError(c, err)
		return
	}

	student, err := h.profileService.GetStudent(h.base.GetDB(c), id)
	if err != nil {
		h.base.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, student)
}

// UpdateStudent godoc
// @Summary Update the authenticated student's profile
// @Tags profiles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentProfileRequest true "Fields to change"
// @Success 200 {object} map[string]string
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /api/student/profile/{id} [put]
func (h *ProfileHandler) UpdateStudent(c *gin.Context) {
	accountID, ok := h.base.GetAuthorizedAccountID(c)
	if !ok {
		return
	}

	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.base.HandleServiceError(c, err)
		return
	}
	if id != accountID {
		h.base.HandleServiceError(c, apperrors.NewForbiddenError("You can only update your own profile"))
		return
	}

	var req dto.UpdateStudentProfileRequest
	if !h.base.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.profileService.UpdateStudent(h.base.GetDB(c), id, &req); err != nil {
		h.base.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully!"})
}

// GetCompany godoc
// @Summary Read a company profile
// @Tags profiles
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} models.Company
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/company/profile/{id} [get]
func (h *ProfileHandler) GetCompany(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.base.HandleServiceError(c, err)
		return
	}

	company, err := h.profileService.GetCompany(h.base.GetDB(c), id)
	if err != nil {
		h.base.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

// UpdateCompany godoc
// @Summary Update the authenticated company's profile
// @Tags profiles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Company ID"
// @Param request body dto.UpdateCompanyProfileRequest true "Fields to change"
// @Success 200 {object} map[string]string
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /api/company/profile/{id} [put]
func (h *ProfileHandler) UpdateCompany(c *gin.Context) {
	accountID, ok := h.base.GetAuthorizedAccountID(c)
	if !ok {
		return
	}

	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.base.HandleServiceError(c, err)
		return
	}
	if id != accountID {
		h.base.HandleServiceError(c, apperrors.NewForbiddenError("You can only update your own profile"))
		return
	}

	var req dto.UpdateCompanyProfileRequest
	if !h.base.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.profileService.UpdateCompany(h.base.GetDB(c), id, &req); err != nil {
		h.base.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully!"})
}
