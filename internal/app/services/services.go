package services

import (
	"github.com/rs/zerolog"

	"github.com/burakuz/campushare/internal/app/repositories"
	"github.com/burakuz/campushare/internal/pkg/auth"
)

// Services bundles all business services for injection into controllers
type Services struct {
	AuthService           AuthService
	OrganizationService   OrganizationService
	ServiceService        ServiceService
	EquipmentService      EquipmentService
	ConnectionService     ConnectionService
	ServiceRequestService ServiceRequestService
	BorrowingService      BorrowingService
	MessageService        MessageService
}

// NewServices wires every service with its repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, logger zerolog.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(
			repos.OrganizationRepository,
			repos.RefreshTokenRepository,
			jwtService,
			logger.With().Str("service", "auth").Logger(),
		),
		OrganizationService: NewOrganizationService(
			repos.OrganizationRepository,
			repos.ServiceRepository,
			repos.EquipmentRepository,
			repos.ConnectionRepository,
			repos.MessageRepository,
			logger.With().Str("service", "organization").Logger(),
		),
		ServiceService: NewServiceService(
			repos.ServiceRepository,
			repos.OrganizationRepository,
			logger.With().Str("service", "service").Logger(),
		),
		EquipmentService: NewEquipmentService(
			repos.EquipmentRepository,
			repos.OrganizationRepository,
			logger.With().Str("service", "equipment").Logger(),
		),
		ConnectionService: NewConnectionService(
			repos.ConnectionRepository,
			repos.OrganizationRepository,
			logger.With().Str("service", "connection").Logger(),
		),
		ServiceRequestService: NewServiceRequestService(
			repos.ServiceRequestRepository,
			repos.ServiceRepository,
			repos.OrganizationRepository,
			logger.With().Str("service", "service_request").Logger(),
		),
		BorrowingService: NewBorrowingService(
			repos.EquipmentBorrowingRepository,
			repos.EquipmentRepository,
			repos.OrganizationRepository,
			logger.With().Str("service", "borrowing").Logger(),
		),
		MessageService: NewMessageService(
			repos.MessageRepository,
			repos.OrganizationRepository,
			logger.With().Str("service", "message").Logger(),
		),
	}
}
