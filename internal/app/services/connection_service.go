package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/burakuz/campushare/internal/app/models"
	"github.com/burakuz/campushare/internal/app/models/dto"
	"github.com/burakuz/campushare/internal/app/repositories"
	"github.com/burakuz/campushare/internal/pkg/apperrors"
)

// ConnectionService defines the interface for connection operations
type ConnectionService interface {
	Request(ctx context.Context, actorID int64, req *dto.CreateConnectionRequest) (*models.Connection, error)
	List(ctx context.Context, actorID int64) ([]*models.Connection, error)
	UpdateStatus(ctx context.Context, actorID, id int64, status models.ConnectionStatus) (*models.Connection, error)
}

// connectionServiceImpl implements ConnectionService
type connectionServiceImpl struct {
	connectionRepo repositories.ConnectionRepository
	orgRepo        repositories.OrganizationRepository
	logger         zerolog.Logger
}

// NewConnectionService creates a new ConnectionService
func NewConnectionService(
	connectionRepo repositories.ConnectionRepository,
	orgRepo repositories.OrganizationRepository,
	logger zerolog.Logger,
) ConnectionService {
	return &connectionServiceImpl{
		connectionRepo: connectionRepo,
		orgRepo:        orgRepo,
		logger:         logger,
	}
}

// Request creates a pending connection from the actor to another
// organization. At most one connection exists per pair; a resolved pair
// cannot be re-requested.
func (s *connectionServiceImpl) Request(ctx context.Context, actorID int64, req *dto.CreateConnectionRequest) (*models.Connection, error) {
	if req.ReceiverID == actorID {
		return nil, apperrors.ErrSelfConnection
	}

	if _, err := s.orgRepo.GetByID(ctx, req.ReceiverID); err != nil {
		return nil, err
	}

	existing, err := s.connectionRepo.FindByPair(ctx, actorID, req.ReceiverID)
	if err != nil && !errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, fmt.Errorf("error checking existing connection: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrConnectionExists
	}

	connection := &models.Connection{
		RequesterID: actorID,
		ReceiverID:  req.ReceiverID,
		Status:      models.ConnectionStatusPending,
		Message:     req.Message,
	}

	// The pair index still backs this up if two requests race past FindByPair
	if err := s.connectionRepo.Create(ctx, connection); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("connectionId", connection.ID).
		Int64("requesterId", actorID).
		Int64("receiverId", req.ReceiverID).
		Msg("Connection requested")

	return connection, nil
}

// List retrieves the actor's connections on either side, with both
// organizations' profiles attached
func (s *connectionServiceImpl) List(ctx context.Context, actorID int64) ([]*models.Connection, error) {
	connections, err := s.connectionRepo.GetByOrganization(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("error listing connections: %w", err)
	}

	for _, connection := range connections {
		if requester, err := s.orgRepo.GetByID(ctx, connection.RequesterID); err == nil {
			connection.Requester = requester
		}
		if receiver, err := s.orgRepo.GetByID(ctx, connection.ReceiverID); err == nil {
			connection.Receiver = receiver
		}
	}

	return connections, nil
}

// UpdateStatus resolves a pending connection. Only the receiving
// organization may accept or reject; resolved connections are terminal.
func (s *connectionServiceImpl) UpdateStatus(ctx context.Context, actorID, id int64, status models.ConnectionStatus) (*models.Connection, error) {
	connection, err := s.connectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if connection.ReceiverID != actorID {
		return nil, apperrors.NewForbiddenError("only the receiving organization can resolve this connection")
	}

	if !connection.CanTransitionTo(status) {
		return nil, apperrors.ErrInvalidTransition
	}

	updated, err := s.connectionRepo.UpdateStatus(ctx, id, connection.Status, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("connectionId", id).
		Str("status", string(status)).
		Msg("Connection resolved")

	return updated, nil
}
