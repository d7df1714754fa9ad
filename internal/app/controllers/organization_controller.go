package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/burakuz/campushare/internal/app/models/dto"
	"github.com/burakuz/campushare/internal/app/services"
	"github.com/burakuz/campushare/internal/middleware"
)

// OrganizationController handles the public organization directory and the
// actor's dashboard
type OrganizationController struct {
	organizationService services.OrganizationService
}

// NewOrganizationController creates a new OrganizationController
func NewOrganizationController(organizationService services.OrganizationService) *OrganizationController {
	return &OrganizationController{organizationService: organizationService}
}

// GetAll lists all registered organizations
// @Summary List organizations
// @Description Retrieves the public profiles of all registered organizations
// @Tags organizations
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.OrganizationProfile} "Organizations retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /organizations [get]
func (c *OrganizationController) GetAll(ctx *gin.Context) {
	organizations, err := c.organizationService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(organizations))
}

// GetByID retrieves one organization's public profile
// @Summary Get organization by ID
// @Tags organizations
// @Produce json
// @Param id path int true "Organization ID"
// @Success 200 {object} dto.APIResponse{data=dto.OrganizationProfile} "Organization retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid organization ID"
// @Failure 404 {object} dto.ErrorResponse "Organization not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /organizations/{id} [get]
func (c *OrganizationController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	organization, err := c.organizationService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(organization))
}

// GetServices lists an organization's services
// @Summary List an organization's services
// @Tags organizations
// @Produce json
// @Param id path int true "Organization ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Service} "Services retrieved"
// @Failure 404 {object} dto.ErrorResponse "Organization not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /organizations/{id}/services [get]
func (c *OrganizationController) GetServices(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	servicesList, err := c.organizationService.GetServices(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(servicesList))
}

// GetEquipment lists an organization's equipment
// @Summary List an organization's equipment
// @Tags organizations
// @Produce json
// @Param id path int true "Organization ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Equipment} "Equipment retrieved"
// @Failure 404 {object} dto.ErrorResponse "Organization not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /organizations/{id}/equipment [get]
func (c *OrganizationController) GetEquipment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	equipment, err := c.organizationService.GetEquipment(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(equipment))
}

// GetDashboardStats summarizes the actor's activity
// @Summary Dashboard statistics
// @Description Returns activity counters for the authenticated organization
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardStatsResponse} "Stats retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dashboard/stats [get]
func (c *OrganizationController) GetDashboardStats(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	stats, err := c.organizationService.GetDashboardStats(ctx, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}
