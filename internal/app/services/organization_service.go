package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/burakuz/campushare/internal/app/models"
	"github.com/burakuz/campushare/internal/app/models/dto"
	"github.com/burakuz/campushare/internal/app/repositories"
)

// OrganizationService defines the interface for the public organization
// directory and the actor's dashboard
type OrganizationService interface {
	GetAll(ctx context.Context) ([]dto.OrganizationProfile, error)
	GetByID(ctx context.Context, id int64) (*dto.OrganizationProfile, error)
	GetServices(ctx context.Context, organizationID int64) ([]*models.Service, error)
	GetEquipment(ctx context.Context, organizationID int64) ([]*models.Equipment, error)
	GetDashboardStats(ctx context.Context, actorID int64) (*dto.DashboardStatsResponse, error)
}

// organizationServiceImpl implements OrganizationService
type organizationServiceImpl struct {
	orgRepo        repositories.OrganizationRepository
	serviceRepo    repositories.ServiceRepository
	equipmentRepo  repositories.EquipmentRepository
	connectionRepo repositories.ConnectionRepository
	messageRepo    repositories.MessageRepository
	logger         zerolog.Logger
}

// NewOrganizationService creates a new OrganizationService
func NewOrganizationService(
	orgRepo repositories.OrganizationRepository,
	serviceRepo repositories.ServiceRepository,
	equipmentRepo repositories.EquipmentRepository,
	connectionRepo repositories.ConnectionRepository,
	messageRepo repositories.MessageRepository,
	logger zerolog.Logger,
) OrganizationService {
	return &organizationServiceImpl{
		orgRepo:        orgRepo,
		serviceRepo:    serviceRepo,
		equipmentRepo:  equipmentRepo,
		connectionRepo: connectionRepo,
		messageRepo:    messageRepo,
		logger:         logger,
	}
}

// GetAll lists every registered organization as a public profile
func (s *organizationServiceImpl) GetAll(ctx context.Context) ([]dto.OrganizationProfile, error) {
	organizations, err := s.orgRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing organizations: %w", err)
	}

	profiles := make([]dto.OrganizationProfile, 0, len(organizations))
	for _, org := range organizations {
		profiles = append(profiles, organizationProfile(org))
	}

	return profiles, nil
}

// GetByID retrieves a single organization's public profile
func (s *organizationServiceImpl) GetByID(ctx context.Context, id int64) (*dto.OrganizationProfile, error) {
	org, err := s.orgRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile := organizationProfile(org)
	return &profile, nil
}

// GetServices lists every service offered by the organization
func (s *organizationServiceImpl) GetServices(ctx context.Context, organizationID int64) ([]*models.Service, error) {
	if _, err := s.orgRepo.GetByID(ctx, organizationID); err != nil {
		return nil, err
	}
	return s.serviceRepo.GetByOrganization(ctx, organizationID)
}

// GetEquipment lists every equipment item owned by the organization
func (s *organizationServiceImpl) GetEquipment(ctx context.Context, organizationID int64) ([]*models.Equipment, error) {
	if _, err := s.orgRepo.GetByID(ctx, organizationID); err != nil {
		return nil, err
	}
	return s.equipmentRepo.GetByOrganization(ctx, organizationID)
}

// GetDashboardStats summarizes the actor's activity for its dashboard
func (s *organizationServiceImpl) GetDashboardStats(ctx context.Context, actorID int64) (*dto.DashboardStatsResponse, error) {
	services, err := s.serviceRepo.GetByOrganization(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("error counting services: %w", err)
	}

	activeServices := 0
	for _, service := range services {
		if service.Status == models.ServiceStatusActive {
			activeServices++
		}
	}

	equipment, err := s.equipmentRepo.GetByOrganization(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("error counting equipment: %w", err)
	}

	connections, err := s.connectionRepo.GetByOrganization(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("error counting connections: %w", err)
	}

	acceptedConnections := 0
	for _, connection := range connections {
		if connection.Status == models.ConnectionStatusAccepted {
			acceptedConnections++
		}
	}

	unread, err := s.messageRepo.UnreadCount(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("error counting unread messages: %w", err)
	}

	return &dto.DashboardStatsResponse{
		ActiveServices:      activeServices,
		EquipmentCount:      len(equipment),
		AcceptedConnections: acceptedConnections,
		UnreadMessages:      unread,
	}, nil
}
