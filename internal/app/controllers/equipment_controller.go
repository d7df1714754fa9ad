package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/burakuz/campushare/internal/app/models/dto"
	"github.com/burakuz/campushare/internal/app/services"
	"github.com/burakuz/campushare/internal/middleware"
)

// EquipmentController handles the equipment catalog endpoints
type EquipmentController struct {
	equipmentService services.EquipmentService
}

// NewEquipmentController creates a new EquipmentController
func NewEquipmentController(equipmentService services.EquipmentService) *EquipmentController {
	return &EquipmentController{equipmentService: equipmentService}
}

// GetAll lists the equipment catalog
// @Summary List equipment
// @Description Retrieves the equipment catalog, optionally filtered by status and free-text search
// @Tags equipment
// @Produce json
// @Param status query string false "Filter by status" Enums(AVAILABLE, BORROWED, MAINTENANCE)
// @Param search query string false "Search in name and description"
// @Success 200 {object} dto.APIResponse{data=[]models.Equipment} "Equipment retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /equipment [get]
func (c *EquipmentController) GetAll(ctx *gin.Context) {
	var filter dto.EquipmentFilter

	if status := ctx.Query("status"); status != "" {
		filter.Status = &status
	}
	if search := ctx.Query("search"); search != "" {
		filter.Search = &search
	}

	equipment, err := c.equipmentService.GetAll(ctx, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(equipment))
}

// GetByID retrieves a single equipment item
// @Summary Get equipment by ID
// @Tags equipment
// @Produce json
// @Param id path int true "Equipment ID"
// @Success 200 {object} dto.APIResponse{data=models.Equipment} "Equipment retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid equipment ID"
// @Failure 404 {object} dto.ErrorResponse "Equipment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /equipment/{id} [get]
func (c *EquipmentController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	equipment, err := c.equipmentService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(equipment))
}

// Create lists a new equipment item owned by the actor
// @Summary Create equipment
// @Tags equipment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEquipmentRequest true "Equipment information"
// @Success 201 {object} dto.APIResponse{data=models.Equipment} "Equipment created"
// @Failure 400 {object} dto.ErrorResponse "Invalid equipment data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /equipment [post]
func (c *EquipmentController) Create(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	var req dto.CreateEquipmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	equipment, err := c.equipmentService.Create(ctx, actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(equipment))
}

// Update applies a partial update to an equipment item
// @Summary Update equipment
// @Description Updates the given fields; only the owner may update. Status changes are rejected while the item is borrowed.
// @Tags equipment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Equipment ID"
// @Param request body dto.UpdateEquipmentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Equipment} "Equipment updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Equipment not found"
// @Failure 409 {object} dto.ErrorResponse "Equipment is currently borrowed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /equipment/{id} [put]
func (c *EquipmentController) Update(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateEquipmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	equipment, err := c.equipmentService.Update(ctx, actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(equipment))
}

// Delete removes an equipment item
// @Summary Delete equipment
// @Tags equipment
// @Produce json
// @Security BearerAuth
// @Param id path int true "Equipment ID"
// @Success 204 "Equipment deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid equipment ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Equipment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /equipment/{id} [delete]
func (c *EquipmentController) Delete(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.equipmentService.Delete(ctx, actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
