package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/burakuz/campushare/internal/app/models"
	"github.com/burakuz/campushare/internal/app/models/dto"
	"github.com/burakuz/campushare/internal/app/repositories"
	"github.com/burakuz/campushare/internal/pkg/apperrors"
)

// BorrowingService defines the interface for equipment borrowing operations
type BorrowingService interface {
	Create(ctx context.Context, actorID, equipmentID int64, req *dto.CreateBorrowingRequest) (*models.EquipmentBorrowing, error)
	ListForEquipment(ctx context.Context, actorID, equipmentID int64) ([]*models.EquipmentBorrowing, error)
	ListForOrganization(ctx context.Context, actorID int64) ([]*models.EquipmentBorrowing, error)
	UpdateStatus(ctx context.Context, actorID, id int64, status models.BorrowingStatus) (*models.EquipmentBorrowing, error)
}

// borrowingServiceImpl implements BorrowingService
type borrowingServiceImpl struct {
	borrowingRepo repositories.EquipmentBorrowingRepository
	equipmentRepo repositories.EquipmentRepository
	orgRepo       repositories.OrganizationRepository
	logger        zerolog.Logger
}

// NewBorrowingService creates a new BorrowingService
func NewBorrowingService(
	borrowingRepo repositories.EquipmentBorrowingRepository,
	equipmentRepo repositories.EquipmentRepository,
	orgRepo repositories.OrganizationRepository,
	logger zerolog.Logger,
) BorrowingService {
	return &borrowingServiceImpl{
		borrowingRepo: borrowingRepo,
		equipmentRepo: equipmentRepo,
		orgRepo:       orgRepo,
		logger:        logger,
	}
}

// Create submits a pending borrowing request for another organization's
// equipment. The equipment must be AVAILABLE and owners cannot borrow their
// own items.
func (s *borrowingServiceImpl) Create(ctx context.Context, actorID, equipmentID int64, req *dto.CreateBorrowingRequest) (*models.EquipmentBorrowing, error) {
	equipment, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	if equipment.OrganizationID == actorID {
		return nil, apperrors.ErrSelfRequest
	}

	if equipment.Status != models.EquipmentStatusAvailable {
		return nil, apperrors.ErrEquipmentUnavailable
	}

	if req.BorrowFrom != nil && req.BorrowUntil != nil && req.BorrowUntil.Before(*req.BorrowFrom) {
		return nil, apperrors.NewValidationError("borrowUntil cannot be before borrowFrom")
	}

	borrowing := &models.EquipmentBorrowing{
		EquipmentID: equipmentID,
		BorrowerID:  actorID,
		Status:      models.BorrowingStatusPending,
		Message:     req.Message,
		BorrowFrom:  req.BorrowFrom,
		BorrowUntil: req.BorrowUntil,
	}

	if err := s.borrowingRepo.Create(ctx, borrowing); err != nil {
		return nil, fmt.Errorf("error creating borrowing request: %w", err)
	}

	s.logger.Info().
		Int64("borrowingId", borrowing.ID).
		Int64("equipmentId", equipmentID).
		Int64("borrowerId", actorID).
		Msg("Borrowing requested")

	return borrowing, nil
}

// ListForEquipment retrieves all borrowing requests for an item; owner only
func (s *borrowingServiceImpl) ListForEquipment(ctx context.Context, actorID, equipmentID int64) ([]*models.EquipmentBorrowing, error) {
	equipment, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	if equipment.OrganizationID != actorID {
		return nil, apperrors.NewForbiddenError("only the owning organization can view borrowings for this equipment")
	}

	borrowings, err := s.borrowingRepo.GetByEquipment(ctx, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("error listing borrowings: %w", err)
	}

	s.attachRelated(ctx, borrowings)
	return borrowings, nil
}

// ListForOrganization retrieves the actor's incoming and outgoing borrowings
func (s *borrowingServiceImpl) ListForOrganization(ctx context.Context, actorID int64) ([]*models.EquipmentBorrowing, error) {
	borrowings, err := s.borrowingRepo.GetByOrganization(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("error listing borrowings: %w", err)
	}

	s.attachRelated(ctx, borrowings)
	return borrowings, nil
}

// UpdateStatus transitions a borrowing. Only the equipment owner drives
// transitions. Approval and return also flip the equipment's availability,
// atomically with the borrowing status change.
func (s *borrowingServiceImpl) UpdateStatus(ctx context.Context, actorID, id int64, status models.BorrowingStatus) (*models.EquipmentBorrowing, error) {
	borrowing, err := s.borrowingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	equipment, err := s.equipmentRepo.GetByID(ctx, borrowing.EquipmentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving equipment for borrowing: %w", err)
	}

	if equipment.OrganizationID != actorID {
		return nil, apperrors.NewForbiddenError("only the owning organization can update this borrowing")
	}

	if !borrowing.CanTransitionTo(status) {
		return nil, apperrors.ErrInvalidTransition
	}

	var updated *models.EquipmentBorrowing
	switch status {
	case models.BorrowingStatusApproved:
		updated, err = s.borrowingRepo.Approve(ctx, id)
	case models.BorrowingStatusReturned:
		updated, err = s.borrowingRepo.Return(ctx, id)
	case models.BorrowingStatusRejected:
		updated, err = s.borrowingRepo.Reject(ctx, id)
	default:
		return nil, apperrors.ErrInvalidTransition
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("borrowingId", id).
		Str("status", string(status)).
		Msg("Borrowing transitioned")

	return updated, nil
}

func (s *borrowingServiceImpl) attachRelated(ctx context.Context, borrowings []*models.EquipmentBorrowing) {
	for _, borrowing := range borrowings {
		if equipment, err := s.equipmentRepo.GetByID(ctx, borrowing.EquipmentID); err == nil {
			borrowing.Equipment = equipment
		}
		if borrower, err := s.orgRepo.GetByID(ctx, borrowing.BorrowerID); err == nil {
			borrowing.Borrower = borrower
		}
	}
}
