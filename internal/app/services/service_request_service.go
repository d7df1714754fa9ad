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

// ServiceRequestService defines the interface for service request operations
type ServiceRequestService interface {
	Create(ctx context.Context, actorID, serviceID int64, req *dto.CreateServiceRequestRequest) (*models.ServiceRequest, error)
	ListForService(ctx context.Context, actorID, serviceID int64) ([]*models.ServiceRequest, error)
	ListForOrganization(ctx context.Context, actorID int64) ([]*models.ServiceRequest, error)
	UpdateStatus(ctx context.Context, actorID, id int64, status models.ServiceRequestStatus) (*models.ServiceRequest, error)
}

// serviceRequestServiceImpl implements ServiceRequestService
type serviceRequestServiceImpl struct {
	requestRepo repositories.ServiceRequestRepository
	serviceRepo repositories.ServiceRepository
	orgRepo     repositories.OrganizationRepository
	logger      zerolog.Logger
}

// NewServiceRequestService creates a new ServiceRequestService
func NewServiceRequestService(
	requestRepo repositories.ServiceRequestRepository,
	serviceRepo repositories.ServiceRepository,
	orgRepo repositories.OrganizationRepository,
	logger zerolog.Logger,
) ServiceRequestService {
	return &serviceRequestServiceImpl{
		requestRepo: requestRepo,
		serviceRepo: serviceRepo,
		orgRepo:     orgRepo,
		logger:      logger,
	}
}

// Create submits a pending request against another organization's service.
// Owners cannot request their own services, and inactive listings cannot be
// requested.
func (s *serviceRequestServiceImpl) Create(ctx context.Context, actorID, serviceID int64, req *dto.CreateServiceRequestRequest) (*models.ServiceRequest, error) {
	service, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if service.OrganizationID == actorID {
		return nil, apperrors.ErrSelfRequest
	}

	if service.Status != models.ServiceStatusActive {
		return nil, apperrors.NewConflictError("service is not active")
	}

	request := &models.ServiceRequest{
		ServiceID:     serviceID,
		RequesterID:   actorID,
		Status:        models.ServiceRequestStatusPending,
		Message:       req.Message,
		DateRequested: req.DateRequested,
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("error creating service request: %w", err)
	}

	s.logger.Info().
		Int64("requestId", request.ID).
		Int64("serviceId", serviceID).
		Int64("requesterId", actorID).
		Msg("Service requested")

	return request, nil
}

// ListForService retrieves all requests against a service; owner only
func (s *serviceRequestServiceImpl) ListForService(ctx context.Context, actorID, serviceID int64) ([]*models.ServiceRequest, error) {
	service, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if service.OrganizationID != actorID {
		return nil, apperrors.NewForbiddenError("only the owning organization can view requests for this service")
	}

	requests, err := s.requestRepo.GetByService(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("error listing service requests: %w", err)
	}

	s.attachRelated(ctx, requests)
	return requests, nil
}

// ListForOrganization retrieves the actor's incoming and outgoing requests
func (s *serviceRequestServiceImpl) ListForOrganization(ctx context.Context, actorID int64) ([]*models.ServiceRequest, error) {
	requests, err := s.requestRepo.GetByOrganization(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("error listing service requests: %w", err)
	}

	s.attachRelated(ctx, requests)
	return requests, nil
}

// UpdateStatus transitions a request. Only the service owner drives
// transitions; anything outside the state machine is rejected.
func (s *serviceRequestServiceImpl) UpdateStatus(ctx context.Context, actorID, id int64, status models.ServiceRequestStatus) (*models.ServiceRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	service, err := s.serviceRepo.GetByID(ctx, request.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving service for request: %w", err)
	}

	if service.OrganizationID != actorID {
		return nil, apperrors.NewForbiddenError("only the owning organization can update this request")
	}

	if !request.CanTransitionTo(status) {
		return nil, apperrors.ErrInvalidTransition
	}

	updated, err := s.requestRepo.UpdateStatus(ctx, id, request.Status, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("requestId", id).
		Str("status", string(status)).
		Msg("Service request transitioned")

	return updated, nil
}

func (s *serviceRequestServiceImpl) attachRelated(ctx context.Context, requests []*models.ServiceRequest) {
	for _, request := range requests {
		if service, err := s.serviceRepo.GetByID(ctx, request.ServiceID); err == nil {
			request.Service = service
		}
		if requester, err := s.orgRepo.GetByID(ctx, request.RequesterID); err == nil {
			request.Requester = requester
		}
	}
}
