package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/burakuz/campushare/internal/app/models"
	"github.com/burakuz/campushare/internal/pkg/apperrors"
	"github.com/burakuz/campushare/internal/pkg/dberrors"
)

const messageColumns = "id, sender_id, receiver_id, content, read, created_at"

// messageRepository is the PostgreSQL implementation of MessageRepository
type messageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *pgxpool.Pool) MessageRepository {
	return &messageRepository{db: db}
}

func scanMessage(row pgx.Row) (*models.Message, error) {
	var message models.Message
	err := row.Scan(
		&message.ID,
		&message.SenderID,
		&message.ReceiverID,
		&message.Content,
		&message.Read,
		&message.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// Create inserts a new message, unread by default
func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	query := `
		INSERT INTO messages (sender_id, receiver_id, content, read)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		message.SenderID,
		message.ReceiverID,
		message.Content,
		message.Read,
	).Scan(&message.ID, &message.CreatedAt)

	if err != nil {
		// The receiver may have been deleted since it was looked up
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrOrganizationNotFound
		}
		return fmt.Errorf("error creating message: %w", err)
	}

	return nil
}

// GetByID retrieves a message by ID
func (r *messageRepository) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	query := fmt.Sprintf(`SELECT %s FROM messages WHERE id = $1`, messageColumns)

	message, err := scanMessage(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving message: %w", err)
	}

	return message, nil
}

// GetConversation retrieves all messages between two organizations in either
// direction, oldest first. Ties on created_at fall back to insertion order.
func (r *messageRepository) GetConversation(ctx context.Context, orgA, orgB int64) ([]*models.Message, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at, id
	`, messageColumns)

	rows, err := r.db.Query(ctx, query, orgA, orgB)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}

// MarkConversationRead marks every unread message addressed to readerID
// within the pair as read
func (r *messageRepository) MarkConversationRead(ctx context.Context, readerID, otherID int64) error {
	query := `
		UPDATE messages SET read = TRUE
		WHERE receiver_id = $1 AND sender_id = $2 AND read = FALSE
	`

	_, err := r.db.Exec(ctx, query, readerID, otherID)
	if err != nil {
		return fmt.Errorf("error marking conversation read: %w", err)
	}

	return nil
}

// MarkRead marks a single message as read. Marking an already-read message
// is a no-op, not an error.
func (r *messageRepository) MarkRead(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `UPDATE messages SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error marking message read: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// UnreadCount returns the number of unread messages addressed to an
// organization
func (r *messageRepository) UnreadCount(ctx context.Context, organizationID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM messages
		WHERE receiver_id = $1 AND read = FALSE
	`, organizationID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("error counting unread messages: %w", err)
	}

	return count, nil
}
