package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/burakuz/campushare/internal/app/models"
	"github.com/burakuz/campushare/internal/app/models/dto"
)

// OrganizationRepository handles organization account records
type OrganizationRepository interface {
	Create(ctx context.Context, org *models.Organization) error
	GetByID(ctx context.Context, id int64) (*models.Organization, error)
	GetByUsername(ctx context.Context, username string) (*models.Organization, error)
	GetAll(ctx context.Context) ([]*models.Organization, error)
}

// RefreshTokenRepository persists opaque refresh tokens
type RefreshTokenRepository interface {
	Store(ctx context.Context, token *models.RefreshToken) error
	Get(ctx context.Context, token string) (*models.RefreshToken, error)
	Delete(ctx context.Context, token string) error
	DeleteByOrganization(ctx context.Context, organizationID int64) error
}

// ServiceRepository handles service listings
type ServiceRepository interface {
	Create(ctx context.Context, service *models.Service) error
	GetByID(ctx context.Context, id int64) (*models.Service, error)
	GetAll(ctx context.Context, filter *dto.ServiceFilter) ([]*models.Service, error)
	GetByOrganization(ctx context.Context, organizationID int64) ([]*models.Service, error)
	Update(ctx context.Context, id int64, upd *dto.UpdateServiceRequest) (*models.Service, error)
	Delete(ctx context.Context, id int64) error
}

// EquipmentRepository handles equipment listings
type EquipmentRepository interface {
	Create(ctx context.Context, equipment *models.Equipment) error
	GetByID(ctx context.Context, id int64) (*models.Equipment, error)
	GetAll(ctx context.Context, filter *dto.EquipmentFilter) ([]*models.Equipment, error)
	GetByOrganization(ctx context.Context, organizationID int64) ([]*models.Equipment, error)
	Update(ctx context.Context, id int64, upd *dto.UpdateEquipmentRequest) (*models.Equipment, error)
	Delete(ctx context.Context, id int64) error
}

// ConnectionRepository handles connection records between organization pairs
type ConnectionRepository interface {
	// Create inserts a new pending connection. The unordered-pair uniqueness
	// is enforced by the store; a duplicate surfaces as ErrConnectionExists.
	Create(ctx context.Context, connection *models.Connection) error
	GetByID(ctx context.Context, id int64) (*models.Connection, error)
	GetByOrganization(ctx context.Context, organizationID int64) ([]*models.Connection, error)
	// FindByPair returns the connection between two organizations in either
	// orientation, or ErrResourceNotFound.
	FindByPair(ctx context.Context, orgA, orgB int64) (*models.Connection, error)
	// UpdateStatus transitions the connection from the given status. A
	// connection no longer in that status yields ErrInvalidTransition, so a
	// racing resolution cannot overwrite a terminal state.
	UpdateStatus(ctx context.Context, id int64, from, to models.ConnectionStatus) (*models.Connection, error)
}

// ServiceRequestRepository handles service request records
type ServiceRequestRepository interface {
	Create(ctx context.Context, request *models.ServiceRequest) error
	GetByID(ctx context.Context, id int64) (*models.ServiceRequest, error)
	GetByService(ctx context.Context, serviceID int64) ([]*models.ServiceRequest, error)
	// GetByOrganization returns requests the organization is involved in:
	// requests against its own services plus requests it made itself.
	GetByOrganization(ctx context.Context, organizationID int64) ([]*models.ServiceRequest, error)
	// UpdateStatus transitions the request from the given status, returning
	// ErrInvalidTransition when the request has moved on in the meantime.
	UpdateStatus(ctx context.Context, id int64, from, to models.ServiceRequestStatus) (*models.ServiceRequest, error)
}

// EquipmentBorrowingRepository handles borrowing records. Approve and Return
// couple the borrowing transition with the equipment availability flip in a
// single transaction so the two can never diverge.
type EquipmentBorrowingRepository interface {
	Create(ctx context.Context, borrowing *models.EquipmentBorrowing) error
	GetByID(ctx context.Context, id int64) (*models.EquipmentBorrowing, error)
	GetByEquipment(ctx context.Context, equipmentID int64) ([]*models.EquipmentBorrowing, error)
	GetByOrganization(ctx context.Context, organizationID int64) ([]*models.EquipmentBorrowing, error)
	// Approve moves a PENDING borrowing to APPROVED and the equipment from
	// AVAILABLE to BORROWED atomically. It returns ErrEquipmentUnavailable
	// when the equipment is no longer available, ErrInvalidTransition when
	// the borrowing is no longer pending.
	Approve(ctx context.Context, id int64) (*models.EquipmentBorrowing, error)
	// Return moves an APPROVED borrowing to RETURNED and restores the
	// equipment to AVAILABLE atomically.
	Return(ctx context.Context, id int64) (*models.EquipmentBorrowing, error)
	Reject(ctx context.Context, id int64) (*models.EquipmentBorrowing, error)
}

// MessageRepository handles direct messages
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	GetByID(ctx context.Context, id int64) (*models.Message, error)
	// GetConversation returns all messages between the two organizations in
	// either direction, ordered by creation time ascending.
	GetConversation(ctx context.Context, orgA, orgB int64) ([]*models.Message, error)
	// MarkConversationRead marks every unread message addressed to readerID
	// within the pair as read.
	MarkConversationRead(ctx context.Context, readerID, otherID int64) error
	MarkRead(ctx context.Context, id int64) error
	UnreadCount(ctx context.Context, organizationID int64) (int, error)
}

// Repositories bundles all repository implementations for injection
type Repositories struct {
	OrganizationRepository       OrganizationRepository
	RefreshTokenRepository       RefreshTokenRepository
	ServiceRepository            ServiceRepository
	EquipmentRepository          EquipmentRepository
	ConnectionRepository         ConnectionRepository
	ServiceRequestRepository     ServiceRequestRepository
	EquipmentBorrowingRepository EquipmentBorrowingRepository
	MessageRepository            MessageRepository
}

// NewRepositories creates the PostgreSQL-backed repository set
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		OrganizationRepository:       NewOrganizationRepository(db),
		RefreshTokenRepository:       NewRefreshTokenRepository(db),
		ServiceRepository:            NewServiceRepository(db),
		EquipmentRepository:          NewEquipmentRepository(db),
		ConnectionRepository:         NewConnectionRepository(db),
		ServiceRequestRepository:     NewServiceRequestRepository(db),
		EquipmentBorrowingRepository: NewEquipmentBorrowingRepository(db),
		MessageRepository:            NewMessageRepository(db),
	}
}
