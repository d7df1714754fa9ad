package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/burakuz/campushare/internal/app/models/dto"
	"github.com/burakuz/campushare/internal/app/services"
	"github.com/burakuz/campushare/internal/middleware"
)

// ServiceController handles the service catalog endpoints
type ServiceController struct {
	serviceService services.ServiceService
}

// NewServiceController creates a new ServiceController
func NewServiceController(serviceService services.ServiceService) *ServiceController {
	return &ServiceController{serviceService: serviceService}
}

// GetAll lists the service catalog
// @Summary List services
// @Description Retrieves the service catalog, optionally filtered by type, pricing and free-text search
// @Tags services
// @Produce json
// @Param type query string false "Filter by service type"
// @Param free query bool false "Filter by free services"
// @Param search query string false "Search in title and description"
// @Success 200 {object} dto.APIResponse{data=[]models.Service} "Services retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /services [get]
func (c *ServiceController) GetAll(ctx *gin.Context) {
	var filter dto.ServiceFilter

	if serviceType := ctx.Query("type"); serviceType != "" {
		filter.ServiceType = &serviceType
	}
	if freeStr := ctx.Query("free"); freeStr != "" {
		free, err := strconv.ParseBool(freeStr)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid free parameter")
			errorDetail = errorDetail.WithDetails("free must be a boolean")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.IsFree = &free
	}
	if search := ctx.Query("search"); search != "" {
		filter.Search = &search
	}

	servicesList, err := c.serviceService.GetAll(ctx, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(servicesList))
}

// GetByID retrieves a single service
// @Summary Get service by ID
// @Tags services
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} dto.APIResponse{data=models.Service} "Service retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid service ID"
// @Failure 404 {object} dto.ErrorResponse "Service not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /services/{id} [get]
func (c *ServiceController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	service, err := c.serviceService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(service))
}

// Create lists a new service owned by the actor
// @Summary Create a service
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateServiceRequest true "Service information"
// @Success 201 {object} dto.APIResponse{data=models.Service} "Service created"
// @Failure 400 {object} dto.ErrorResponse "Invalid service data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /services [post]
func (c *ServiceController) Create(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	var req dto.CreateServiceRequest
	if !bindJSON(ctx, &req) {
		return
	}

	service, err := c.serviceService.Create(ctx, actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(service))
}

// Update applies a partial update to a service
// @Summary Update a service
// @Description Updates the given fields of a service; only the owner may update
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Param request body dto.UpdateServiceRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Service} "Service updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Service not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /services/{id} [put]
func (c *ServiceController) Update(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateServiceRequest
	if !bindJSON(ctx, &req) {
		return
	}

	service, err := c.serviceService.Update(ctx, actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(service))
}

// Delete removes a service
// @Summary Delete a service
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Success 204 "Service deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid service ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Service not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /services/{id} [delete]
func (c *ServiceController) Delete(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.serviceService.Delete(ctx, actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
