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

// ServiceService defines the interface for service listing operations
type ServiceService interface {
	Create(ctx context.Context, actorID int64, req *dto.CreateServiceRequest) (*models.Service, error)
	GetAll(ctx context.Context, filter *dto.ServiceFilter) ([]*models.Service, error)
	GetByID(ctx context.Context, id int64) (*models.Service, error)
	Update(ctx context.Context, actorID, id int64, req *dto.UpdateServiceRequest) (*models.Service, error)
	Delete(ctx context.Context, actorID, id int64) error
}

// serviceServiceImpl implements ServiceService
type serviceServiceImpl struct {
	serviceRepo repositories.ServiceRepository
	orgRepo     repositories.OrganizationRepository
	logger      zerolog.Logger
}

// NewServiceService creates a new ServiceService
func NewServiceService(
	serviceRepo repositories.ServiceRepository,
	orgRepo repositories.OrganizationRepository,
	logger zerolog.Logger,
) ServiceService {
	return &serviceServiceImpl{
		serviceRepo: serviceRepo,
		orgRepo:     orgRepo,
		logger:      logger,
	}
}

// Create lists a new service owned by the actor. The owner is always the
// authenticated actor regardless of payload.
func (s *serviceServiceImpl) Create(ctx context.Context, actorID int64, req *dto.CreateServiceRequest) (*models.Service, error) {
	if req.IsFree != nil && !*req.IsFree && req.Price == nil {
		return nil, apperrors.NewValidationError("a paid service requires a price")
	}

	service := &models.Service{
		OrganizationID: actorID,
		Title:          req.Title,
		Description:    req.Description,
		ServiceType:    req.ServiceType,
		IsFree:         req.IsFree == nil || *req.IsFree,
		Price:          req.Price,
		Availability:   req.Availability,
		Capacity:       req.Capacity,
		Status:         models.ServiceStatusActive,
	}
	if service.IsFree {
		service.Price = nil
	}

	if err := s.serviceRepo.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("error creating service: %w", err)
	}

	s.logger.Info().
		Int64("serviceId", service.ID).
		Int64("organizationId", actorID).
		Msg("Service created")

	return service, nil
}

// GetAll retrieves the public service catalog with optional filters
func (s *serviceServiceImpl) GetAll(ctx context.Context, filter *dto.ServiceFilter) ([]*models.Service, error) {
	return s.serviceRepo.GetAll(ctx, filter)
}

// GetByID retrieves a service with its owning organization attached
func (s *serviceServiceImpl) GetByID(ctx context.Context, id int64) (*models.Service, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if org, err := s.orgRepo.GetByID(ctx, service.OrganizationID); err == nil {
		service.Organization = org
	}

	return service, nil
}

// Update applies a partial update; only the owner may modify a service
func (s *serviceServiceImpl) Update(ctx context.Context, actorID, id int64, req *dto.UpdateServiceRequest) (*models.Service, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if service.OrganizationID != actorID {
		return nil, apperrors.NewForbiddenError("only the owning organization can modify this service")
	}

	// The pricing invariant holds on the merged state: a free service never
	// carries a price, a paid service always does
	isFree := service.IsFree
	if req.IsFree != nil {
		isFree = *req.IsFree
	}
	if isFree {
		req.Price = nil
	} else if req.Price == nil && service.Price == nil {
		return nil, apperrors.NewValidationError("a paid service requires a price")
	}

	return s.serviceRepo.Update(ctx, id, req)
}

// Delete removes a service; only the owner may delete it
func (s *serviceServiceImpl) Delete(ctx context.Context, actorID, id int64) error {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if service.OrganizationID != actorID {
		return apperrors.NewForbiddenError("only the owning organization can delete this service")
	}

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().
		Int64("serviceId", id).
		Int64("organizationId", actorID).
		Msg("Service deleted")

	return nil
}
