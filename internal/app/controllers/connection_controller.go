package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/burakuz/campushare/internal/app/models"
	"github.com/burakuz/campushare/internal/app/models/dto"
	"github.com/burakuz/campushare/internal/app/services"
	"github.com/burakuz/campushare/internal/middleware"
)

// ConnectionController handles connection endpoints
type ConnectionController struct {
	connectionService services.ConnectionService
}

// NewConnectionController creates a new ConnectionController
func NewConnectionController(connectionService services.ConnectionService) *ConnectionController {
	return &ConnectionController{connectionService: connectionService}
}

// Create requests a connection with another organization
// @Summary Request a connection
// @Description Creates a pending connection from the actor to another organization. At most one connection exists per pair.
// @Tags connections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateConnectionRequest true "Connection request"
// @Success 201 {object} dto.APIResponse{data=models.Connection} "Connection requested"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or self connection"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Receiver not found"
// @Failure 409 {object} dto.ErrorResponse "Connection already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /connections [post]
func (c *ConnectionController) Create(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	var req dto.CreateConnectionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	connection, err := c.connectionService.Request(ctx, actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(connection))
}

// List lists the actor's connections
// @Summary List connections
// @Description Retrieves every connection the actor participates in, on either side
// @Tags connections
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Connection} "Connections retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /connections [get]
func (c *ConnectionController) List(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	connections, err := c.connectionService.List(ctx, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(connections))
}

// UpdateStatus resolves a pending connection
// @Summary Resolve a connection
// @Description Accepts or rejects a pending connection; only the receiving organization may resolve it
// @Tags connections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Connection ID"
// @Param request body dto.UpdateConnectionStatusRequest true "Target status"
// @Success 200 {object} dto.APIResponse{data=models.Connection} "Connection resolved"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the receiver"
// @Failure 404 {object} dto.ErrorResponse "Connection not found"
// @Failure 409 {object} dto.ErrorResponse "Connection already resolved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /connections/{id}/status [put]
func (c *ConnectionController) UpdateStatus(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateConnectionStatusRequest
	if !bindJSON(ctx, &req) {
		return
	}

	connection, err := c.connectionService.UpdateStatus(ctx, actor, id, models.ConnectionStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(connection))
}
