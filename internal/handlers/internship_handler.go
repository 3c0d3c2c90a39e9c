package handlers

import (
	"net/http"

	"internhub_backend/internal/middleware"
	"internhub_backend/internal/models"
	"internhub_backend/internal/services"
	"internhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type InternshipHandler struct {
	internshipService services.InternshipService
	base              *BaseHandler
}

func NewInternshipHandler(internshipService services.InternshipService, base *BaseHandler) *InternshipHandler {
	return &InternshipHandler{
		internshipService: internshipService,
		base:              base,
	}
}

// RegisterRoutes wires the internship endpoints. Reads are public; writes
// require a company token.
func (h *InternshipHandler) RegisterRoutes(api *gin.RouterGroup, authRequired gin.HandlerFunc) {
	internships := api.Group("/internships")
	{
		internships.GET("/all", h.ListAll)
		internships.GET("/company/:id", h.ListByCompany)
		internships.GET("/:id", h.GetByID)
	}

	companyOnly := api.Group("/internships", authRequired, middleware.RequireKind(models.AccountKindCompany))
	{
		companyOnly.POST("", h.Create)
		companyOnly.PUT("/:id", h.Update)
		companyOnly.DELETE("/:id", h.Delete)
	}
}

// Create godoc
// @Summary Post a new internship for the authenticated company
// @Tags internships
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SaveInternshipRequest true "Internship data"
// @Success 201 {object} dto.CreateInternshipResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /api/internships [post]
func (h *InternshipHandler) Create(c *gin.Context) {
	companyID, ok := h.base.GetAuthorizedAccountID(c)
	if !ok {
		return
	}

	var req dto.SaveInternshipRequest
	if !h.base.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.internshipService.Create(h.base.GetDB(c), companyID, &req)
	if err != nil {
		h.base.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListByCompany godoc
// @Summary List a company's internships, newest first
// @Tags internships
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {array} models.Internship
// @Router /api/internships/company/{id} [get]
func (h *InternshipHandler) ListByCompany(c *gin.Context) {
	companyID, err := ParseParamUint(c, "id")
	if err != nil {
		h.base.HandleServiceError(c, err)
		return
	}

	rows, err := h.internshipService.ListByCompany(h.base.GetDB(c), companyID)
	if err != nil {
		h.base.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// ListAll godoc
// @Summary List every internship with its company name, newest first
// @Tags internships
// @Produce json
// @Success 200 {array} models.InternshipWithCompany
// @Router /api/internships/all [get]
func (h *InternshipHandler) ListAll(c *gin.Context) {
	rows, err := h.internshipService.ListAll(h.base.GetDB(c))
	if err != nil {
		h.base.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// GetByID godoc
// @Summary Get a single internship
// @Tags internships
// @Produce json
// @Param id path int true "Internship ID"
// @Success 200 {object} models.Internship
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/internships/{id} [get]
func (h *InternshipHandler) GetByID(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.base.HandleServiceError(c, err)
		return
	}

	internship, err := h.internshipService.GetByID(h.base.GetDB(c), id)
	if err != nil {
		h.base.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, internship)
}

// Update godoc
// @Summary Update an internship owned by the authenticated company
// @Tags internships
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Internship ID"
// @Param request body dto.SaveInternshipRequest true "Internship data"
// @Success 200 {object} map[string]string
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/internships/{id} [put]
func (h *InternshipHandler) Update(c *gin.Context) {
	companyID, ok := h.base.GetAuthorizedAccountID(c)
	if !ok {
		return
	}

	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.base.HandleServiceError(c, err)
		return
	}

	var req dto.SaveInternshipRequest
	if !h.base.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.internshipService.Update(h.base.GetDB(c), id, companyID, &req); err != nil {
		h.base.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Internship updated successfully!"})
}

// Delete godoc
// @Summary Delete an internship owned by the authenticated company
// @Tags internships
// @Security BearerAuth
// @Produce json
// @Param id path int true "Internship ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/internships/{id} [delete]
func (h *InternshipHandler) Delete(c *gin.Context) {
	companyID, ok := h.base.GetAuthorizedAccountID(c)
	if !ok {
		return
	}

	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.base.HandleServiceError(c, err)
		return
	}

	if err := h.internshipService.Delete(h.base.GetDB(c), id, companyID); err != nil {
		h.base.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Internship deleted successfully!"})
}
