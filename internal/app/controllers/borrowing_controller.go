package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/burakuz/campushare/internal/app/models"
	"github.com/burakuz/campushare/internal/app/models/dto"
	"github.com/burakuz/campushare/internal/app/services"
	"github.com/burakuz/campushare/internal/middleware"
)

// BorrowingController handles equipment borrowing endpoints
type BorrowingController struct {
	borrowingService services.BorrowingService
}

// NewBorrowingController creates a new BorrowingController
func NewBorrowingController(borrowingService services.BorrowingService) *BorrowingController {
	return &BorrowingController{borrowingService: borrowingService}
}

// Create submits a borrowing request for an equipment item
// @Summary Request to borrow equipment
// @Description Submits a pending borrowing request for another organization's available equipment
// @Tags borrowings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Equipment ID"
// @Param request body dto.CreateBorrowingRequest true "Borrowing details"
// @Success 201 {object} dto.APIResponse{data=models.EquipmentBorrowing} "Borrowing request created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or own equipment"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Equipment not found"
// @Failure 409 {object} dto.ErrorResponse "Equipment is not available"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /equipment/{id}/borrowings [post]
func (c *BorrowingController) Create(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	equipmentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateBorrowingRequest
	if !bindJSON(ctx, &req) {
		return
	}

	borrowing, err := c.borrowingService.Create(ctx, actor, equipmentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(borrowing))
}

// ListForEquipment lists all borrowing requests for an equipment item
// @Summary List borrowings for equipment
// @Description Retrieves all borrowing requests for an item; only the owner may view them
// @Tags borrowings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Equipment ID"
// @Success 200 {object} dto.APIResponse{data=[]models.EquipmentBorrowing} "Borrowings retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Equipment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /equipment/{id}/borrowings [get]
func (c *BorrowingController) ListForEquipment(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	equipmentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	borrowings, err := c.borrowingService.ListForEquipment(ctx, actor, equipmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(borrowings))
}

// List lists the actor's incoming and outgoing borrowings
// @Summary List own borrowings
// @Description Retrieves borrowings the actor requested plus requests received against its equipment
// @Tags borrowings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.EquipmentBorrowing} "Borrowings retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /equipment-borrowings [get]
func (c *BorrowingController) List(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	borrowings, err := c.borrowingService.ListForOrganization(ctx, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(borrowings))
}

// UpdateStatus transitions a borrowing
// @Summary Update borrowing status
// @Description Transitions a borrowing; only the equipment owner may transition. Approval and return also flip the equipment's availability.
// @Tags borrowings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Borrowing ID"
// @Param request body dto.UpdateBorrowingStatusRequest true "Target status"
// @Success 200 {object} dto.APIResponse{data=models.EquipmentBorrowing} "Borrowing updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Borrowing not found"
// @Failure 409 {object} dto.ErrorResponse "Invalid transition or equipment unavailable"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /equipment-borrowings/{id}/status [put]
func (c *BorrowingController) UpdateStatus(ctx *gin.Context) {
	actor, ok := actorID(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateBorrowingStatusRequest
	if !bindJSON(ctx, &req) {
		return
	}

	borrowing, err := c.borrowingService.UpdateStatus(ctx, actor, id, models.BorrowingStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(borrowing))
}
