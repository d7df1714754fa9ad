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

const connectionColumns = "id, requester_id, receiver_id, status, message, created_at"

// connectionPairConstraint is the unique index on the unordered organization
// pair. Concurrent double-submission is resolved by the database, not by a
// read-then-insert in application code.
const connectionPairConstraint = "connections_pair_key"

// connectionRepository is the PostgreSQL implementation of ConnectionRepository
type connectionRepository struct {
	db *pgxpool.Pool
}

// NewConnectionRepository creates a new connection repository
func NewConnectionRepository(db *pgxpool.Pool) ConnectionRepository {
	return &connectionRepository{db: db}
}

func scanConnection(row pgx.Row) (*models.Connection, error) {
	var connection models.Connection
	err := row.Scan(
		&connection.ID,
		&connection.RequesterID,
		&connection.ReceiverID,
		&connection.Status,
		&connection.Message,
		&connection.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &connection, nil
}

// Create inserts a new pending connection
func (r *connectionRepository) Create(ctx context.Context, connection *models.Connection) error {
	query := `
		INSERT INTO connections (requester_id, receiver_id, status, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		connection.RequesterID,
		connection.ReceiverID,
		connection.Status,
		connection.Message,
	).Scan(&connection.ID, &connection.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, connectionPairConstraint) {
			return apperrors.ErrConnectionExists
		}
		// Either organization may have been deleted since it was looked up
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrOrganizationNotFound
		}
		return fmt.Errorf("error creating connection: %w", err)
	}

	return nil
}

// GetByID retrieves a connection by ID
func (r *connectionRepository) GetByID(ctx context.Context, id int64) (*models.Connection, error) {
	query := fmt.Sprintf(`SELECT %s FROM connections WHERE id = $1`, connectionColumns)

	connection, err := scanConnection(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrConnectionNotFound
		}
		return nil, fmt.Errorf("error retrieving connection: %w", err)
	}

	return connection, nil
}

// GetByOrganization retrieves all connections the organization participates
// in, on either side
func (r *connectionRepository) GetByOrganization(ctx context.Context, organizationID int64) ([]*models.Connection, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM connections
		WHERE requester_id = $1 OR receiver_id = $1
		ORDER BY id
	`, connectionColumns)

	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var connections []*models.Connection
	for rows.Next() {
		connection, err := scanConnection(rows)
		if err != nil {
			return nil, err
		}
		connections = append(connections, connection)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return connections, nil
}

// FindByPair returns the connection between two organizations in either
// orientation
func (r *connectionRepository) FindByPair(ctx context.Context, orgA, orgB int64) (*models.Connection, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM connections
		WHERE (requester_id = $1 AND receiver_id = $2)
		   OR (requester_id = $2 AND receiver_id = $1)
	`, connectionColumns)

	connection, err := scanConnection(r.db.QueryRow(ctx, query, orgA, orgB))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving connection by pair: %w", err)
	}

	return connection, nil
}

// UpdateStatus transitions a connection from one status to another. The
// conditional WHERE clause keeps racing resolutions from overwriting a
// terminal state.
func (r *connectionRepository) UpdateStatus(ctx context.Context, id int64, from, to models.ConnectionStatus) (*models.Connection, error) {
	query := fmt.Sprintf(`
		UPDATE connections SET status = $1
		WHERE id = $2 AND status = $3
		RETURNING %s
	`, connectionColumns)

	connection, err := scanConnection(r.db.QueryRow(ctx, query, to, id, from))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, apperrors.ErrInvalidTransition
		}
		return nil, fmt.Errorf("error updating connection status: %w", err)
	}

	return connection, nil
}
