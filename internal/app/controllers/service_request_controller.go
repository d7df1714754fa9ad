package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/burakuz/campushare/internal/app/models"
	"github.com/burakuz/campushare/internal/app/models/dto"
	"github.com/burakuz/campushare/internal/app/services"
	"github.com/burakuz/campushare/internal/middleware"
)

// ServiceRequestController handles service request endpoints
type ServiceRequestController struct {
	requestService services.ServiceRequestService
}

// NewServiceRequestController creates a new ServiceRequestController
func NewServiceRequestController(requestService services.ServiceRequestService) *ServiceRequestController {
	return &ServiceRequestController{requestService: requestService}
}

// Create submits a request against a service
// @Summary Request a service
// @Description Submits a pending request against another organization's service
// @Tags service-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Param request body dto.CreateServiceRequestRequest true "Request details"
// @Success 201 {object} dto.APIResponse{data=models.ServiceRequest} "Request created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or own service"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Service not found"
// @Failure 409 {object} dto.ErrorResponse "Service is not active"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /services/{id}/requests [post]
func (c *ServiceRequestController) Create(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	serviceID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateServiceRequestRequest
	if !bindJSON(ctx, &req) {
		return
	}

	request, err := c.requestService.Create(ctx, actor, serviceID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(request))
}

// ListForService lists all requests against a service
// @Summary List requests for a service
// @Description Retrieves all requests against a service; only the owner may view them
// @Tags service-requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Success 200 {object} dto.APIResponse{data=[]models.ServiceRequest} "Requests retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Service not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /services/{id}/requests [get]
func (c *ServiceRequestController) ListForService(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	serviceID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	requests, err := c.requestService.ListForService(ctx, actor, serviceID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(requests))
}

// List lists the actor's incoming and outgoing service requests
// @Summary List own service requests
// @Description Retrieves requests the actor submitted plus requests received against its services
// @Tags service-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.ServiceRequest} "Requests retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /service-requests [get]
func (c *ServiceRequestController) List(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	requests, err := c.requestService.ListForOrganization(ctx, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(requests))
}

// UpdateStatus transitions a service request
// @Summary Update request status
// @Description Transitions a request; only the service owner may transition, and only along the state machine
// @Tags service-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body dto.UpdateServiceRequestStatusRequest true "Target status"
// @Success 200 {object} dto.APIResponse{data=models.ServiceRequest} "Request updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 409 {object} dto.ErrorResponse "Invalid status transition"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /service-requests/{id}/status [put]
func (c *ServiceRequestController) UpdateStatus(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateServiceRequestStatusRequest
	if !bindJSON(ctx, &req) {
		return
	}

	request, err := c.requestService.UpdateStatus(ctx, actor, id, models.ServiceRequestStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(request))
}
