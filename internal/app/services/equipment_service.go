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

// EquipmentService defines the interface for equipment listing operations
type EquipmentService interface {
	Create(ctx context.Context, actorID int64, req *dto.CreateEquipmentRequest) (*models.Equipment, error)
	GetAll(ctx context.Context, filter *dto.EquipmentFilter) ([]*models.Equipment, error)
	GetByID(ctx context.Context, id int64) (*models.Equipment, error)
	Update(ctx context.Context, actorID, id int64, req *dto.UpdateEquipmentRequest) (*models.Equipment, error)
	Delete(ctx context.Context, actorID, id int64) error
}

// equipmentServiceImpl implements EquipmentService
type equipmentServiceImpl struct {
	equipmentRepo repositories.EquipmentRepository
	orgRepo       repositories.OrganizationRepository
	logger        zerolog.Logger
}

// NewEquipmentService creates a new EquipmentService
func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepository,
	orgRepo repositories.OrganizationRepository,
	logger zerolog.Logger,
) EquipmentService {
	return &equipmentServiceImpl{
		equipmentRepo: equipmentRepo,
		orgRepo:       orgRepo,
		logger:        logger,
	}
}

// Create lists a new equipment item owned by the actor, AVAILABLE by default
func (s *equipmentServiceImpl) Create(ctx context.Context, actorID int64, req *dto.CreateEquipmentRequest) (*models.Equipment, error) {
	equipment := &models.Equipment{
		OrganizationID: actorID,
		Name:           req.Name,
		Description:    req.Description,
		ImageURL:       req.ImageURL,
		Status:         models.EquipmentStatusAvailable,
		AvailableUntil: req.AvailableUntil,
		Deposit:        req.Deposit,
		Conditions:     req.Conditions,
	}

	if err := s.equipmentRepo.Create(ctx, equipment); err != nil {
		return nil, fmt.Errorf("error creating equipment: %w", err)
	}

	s.logger.Info().
		Int64("equipmentId", equipment.ID).
		Int64("organizationId", actorID).
		Msg("Equipment listed")

	return equipment, nil
}

// GetAll retrieves the public equipment catalog with optional filters
func (s *equipmentServiceImpl) GetAll(ctx context.Context, filter *dto.EquipmentFilter) ([]*models.Equipment, error) {
	return s.equipmentRepo.GetAll(ctx, filter)
}

// GetByID retrieves an equipment item with its owning organization attached
func (s *equipmentServiceImpl) GetByID(ctx context.Context, id int64) (*models.Equipment, error) {
	equipment, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if org, err := s.orgRepo.GetByID(ctx, equipment.OrganizationID); err == nil {
		equipment.Organization = org
	}

	return equipment, nil
}

// Update applies a partial update; only the owner may modify equipment.
// A status change while the item is BORROWED surfaces as Conflict from the
// store guard.
func (s *equipmentServiceImpl) Update(ctx context.Context, actorID, id int64, req *dto.UpdateEquipmentRequest) (*models.Equipment, error) {
	equipment, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if equipment.OrganizationID != actorID {
		return nil, apperrors.NewForbiddenError("only the owning organization can modify this equipment")
	}

	return s.equipmentRepo.Update(ctx, id, req)
}

// Delete removes an equipment item; only the owner may delete it
func (s *equipmentServiceImpl) Delete(ctx context.Context, actorID, id int64) error {
	equipment, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if equipment.OrganizationID != actorID {
		return apperrors.NewForbiddenError("only the owning organization can delete this equipment")
	}

	if err := s.equipmentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().
		Int64("equipmentId", id).
		Int64("organizationId", actorID).
		Msg("Equipment deleted")

	return nil
}
