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

type ApplicationHandler struct {
	applicationService services.ApplicationService
	base               *BaseHandler
}

func NewApplicationHandler(applicationService services.ApplicationService, base *BaseHandler) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
		base:               base,
	}
}

// RegisterRoutes wires the application endpoints. Everything here needs a
// token: students apply and read their own history, companies read
// applicants and move statuses.
func (h *ApplicationHandler) RegisterRoutes(api *gin.RouterGroup, authRequired gin.HandlerFunc) {
	studentOnly := api.Group("", authRequired, middleware.RequireKind(models.AccountKindStudent))
	{
		studentOnly.POST("/applications", h.Apply)
		studentOnly.GET("/student/applications/:student_id", h.ListForStudent)
	}

	companyOnly := api.Group("", authRequired, middleware.RequireKind(models.AccountKindCompany))
	{
		companyOnly.GET("/internships/:id/applications", h.ListForInternship)
		companyOnly.GET("/company/applications", h.ListForCompany)
		companyOnly.PUT("/applications/:id/status", h.UpdateStatus)
	}
}

// Apply godoc
// @Summary Apply to an internship as the authenticated student
// @Tags applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ApplyRequest true "Application data"
// @Success 201 {object} dto.ApplyResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /api/applications [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	studentID, ok := h.base.GetAuthorizedAccountID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.base.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.applicationService.Apply(h.base.GetDB(c), studentID, &req)
	if err != nil {
		h.base.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListForInternship godoc
// @Summary List applicants for one of the company's internships
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Param id path int true "Internship ID"
// @Success 200 {array} models.ApplicationWithStudent
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/internships/{id}/applications [get]
func (h *ApplicationHandler) ListForInternship(c *gin.Context) {
	companyID, ok := h.base.GetAuthorizedAccountID(c)
	if !ok {
		return
	}

	internshipID, err := ParseParamUint(c, "id")
	if err != nil {
		h.base.HandleServiceError(c, err)
		return
	}

	rows, err := h.applicationService.ListForInternship(h.base.GetDB(c), internshipID, companyID)
	if err != nil {
		h.base.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// ListForStudent godoc
// @Summary List the authenticated student's applications
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {array} models.ApplicationWithInternship
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /api/student/applications/{student_id} [get]
func (h *ApplicationHandler) ListForStudent(c *gin.Context) {
	studentID, ok := h.base.GetAuthorizedAccountID(c)
	if !ok {
		return
	}

	paramID, err := ParseParamUint(c, "student_id")
	if err != nil {
		h.base.HandleServiceError(c, err)
		return
	}
	if paramID != studentID {
		h.base.HandleServiceError(c, apperrors.NewForbiddenError("You can only view your own applications"))
		return
	}

	rows, err := h.applicationService.ListForStudent(h.base.GetDB(c), studentID)
	if err != nil {
		h.base.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// ListForCompany godoc
// @Summary List every application across the company's internships
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.CompanyApplicationRow
// @Router /api/company/applications [get]
func (h *ApplicationHandler) ListForCompany(c *gin.Context) {
	companyID, ok := h.base.GetAuthorizedAccountID(c)
	if !ok {
		return
	}

	rows, err := h.applicationService.ListForCompany(h.base.GetDB(c), companyID)
	if err != nil {
		h.base.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// UpdateStatus godoc
// @Summary Change an application's status on one of the company's internships
// @Tags applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} map[string]string
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/applications/{id}/status [put]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	companyID, ok := h.base.GetAuthorizedAccountID(c)
	if !ok {
		return
	}

	applicationID, err := ParseParamUint(c, "id")
	if err != nil {
		h.base.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateStatusRequest
	if !h.base.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.applicationService.UpdateStatus(h.base.GetDB(c), applicationID, req.Status, companyID); err != nil {
		h.base.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application status updated successfully!"})
}
