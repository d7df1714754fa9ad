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

// MessageService defines the interface for direct messaging
type MessageService interface {
	Send(ctx context.Context, actorID int64, req *dto.SendMessageRequest) (*models.Message, error)
	GetConversation(ctx context.Context, actorID, otherID int64) ([]*models.Message, error)
	MarkRead(ctx context.Context, actorID, messageID int64) error
	UnreadCount(ctx context.Context, actorID int64) (int, error)
}

// messageServiceImpl implements MessageService
type messageServiceImpl struct {
	messageRepo repositories.MessageRepository
	orgRepo     repositories.OrganizationRepository
	logger      zerolog.Logger
}

// NewMessageService creates a new MessageService
func NewMessageService(
	messageRepo repositories.MessageRepository,
	orgRepo repositories.OrganizationRepository,
	logger zerolog.Logger,
) MessageService {
	return &messageServiceImpl{
		messageRepo: messageRepo,
		orgRepo:     orgRepo,
		logger:      logger,
	}
}

// Send delivers a message from the actor to another organization, unread
func (s *messageServiceImpl) Send(ctx context.Context, actorID int64, req *dto.SendMessageRequest) (*models.Message, error) {
	if req.ReceiverID == actorID {
		return nil, apperrors.ErrSelfMessage
	}

	if _, err := s.orgRepo.GetByID(ctx, req.ReceiverID); err != nil {
		return nil, err
	}

	message := &models.Message{
		SenderID:   actorID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
		Read:       false,
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("error sending message: %w", err)
	}

	s.logger.Debug().
		Int64("messageId", message.ID).
		Int64("senderId", actorID).
		Int64("receiverId", req.ReceiverID).
		Msg("Message sent")

	return message, nil
}

// GetConversation retrieves the full exchange between the actor and another
// organization, oldest first. Opening a conversation marks every message
// addressed to the actor within it as read.
func (s *messageServiceImpl) GetConversation(ctx context.Context, actorID, otherID int64) ([]*models.Message, error) {
	if _, err := s.orgRepo.GetByID(ctx, otherID); err != nil {
		return nil, err
	}

	if err := s.messageRepo.MarkConversationRead(ctx, actorID, otherID); err != nil {
		return nil, err
	}

	return s.messageRepo.GetConversation(ctx, actorID, otherID)
}

// MarkRead marks a single message as read; only its receiver may do so.
// Marking an already-read message is a no-op.
func (s *messageServiceImpl) MarkRead(ctx context.Context, actorID, messageID int64) error {
	message, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}

	if message.ReceiverID != actorID {
		return apperrors.NewForbiddenError("only the receiving organization can mark this message read")
	}

	return s.messageRepo.MarkRead(ctx, messageID)
}

// UnreadCount returns how many unread messages are addressed to the actor
func (s *messageServiceImpl) UnreadCount(ctx context.Context, actorID int64) (int, error) {
	return s.messageRepo.UnreadCount(ctx, actorID)
}
