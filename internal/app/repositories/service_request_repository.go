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

const serviceRequestColumns = "id, service_id, requester_id, message, date_requested, status, created_at"

// serviceRequestRepository is the PostgreSQL implementation of ServiceRequestRepository
type serviceRequestRepository struct {
	db *pgxpool.Pool
}

// NewServiceRequestRepository creates a new service request repository
func NewServiceRequestRepository(db *pgxpool.Pool) ServiceRequestRepository {
	return &serviceRequestRepository{db: db}
}

func scanServiceRequest(row pgx.Row) (*models.ServiceRequest, error) {
	var request models.ServiceRequest
	err := row.Scan(
		&request.ID,
		&request.ServiceID,
		&request.RequesterID,
		&request.Message,
		&request.DateRequested,
		&request.Status,
		&request.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func collectServiceRequests(rows pgx.Rows) ([]*models.ServiceRequest, error) {
	var requests []*models.ServiceRequest
	for rows.Next() {
		request, err := scanServiceRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// Create inserts a new pending service request
func (r *serviceRequestRepository) Create(ctx context.Context, request *models.ServiceRequest) error {
	query := `
		INSERT INTO service_requests (service_id, requester_id, message, date_requested, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		request.ServiceID,
		request.RequesterID,
		request.Message,
		request.DateRequested,
		request.Status,
	).Scan(&request.ID, &request.CreatedAt)

	if err != nil {
		// The service may have been deleted since it was looked up
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("error creating service request: %w", err)
	}

	return nil
}

// GetByID retrieves a service request by ID
func (r *serviceRequestRepository) GetByID(ctx context.Context, id int64) (*models.ServiceRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM service_requests WHERE id = $1`, serviceRequestColumns)

	request, err := scanServiceRequest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving service request: %w", err)
	}

	return request, nil
}

// GetByService retrieves all requests made against a service
func (r *serviceRequestRepository) GetByService(ctx context.Context, serviceID int64) ([]*models.ServiceRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM service_requests WHERE service_id = $1 ORDER BY id`, serviceRequestColumns)

	rows, err := r.db.Query(ctx, query, serviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectServiceRequests(rows)
}

// GetByOrganization retrieves requests relevant to an organization: requests
// it submitted plus requests received against services it owns
func (r *serviceRequestRepository) GetByOrganization(ctx context.Context, organizationID int64) ([]*models.ServiceRequest, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM service_requests
		WHERE requester_id = $1
		   OR service_id IN (SELECT id FROM services WHERE organization_id = $1)
		ORDER BY id
	`, serviceRequestColumns)

	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectServiceRequests(rows)
}

// UpdateStatus transitions a service request from one status to another. The
// conditional WHERE clause keeps racing transitions from overwriting each
// other.
func (r *serviceRequestRepository) UpdateStatus(ctx context.Context, id int64, from, to models.ServiceRequestStatus) (*models.ServiceRequest, error) {
	query := fmt.Sprintf(`
		UPDATE service_requests SET status = $1
		WHERE id = $2 AND status = $3
		RETURNING %s
	`, serviceRequestColumns)

	request, err := scanServiceRequest(r.db.QueryRow(ctx, query, to, id, from))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, apperrors.ErrInvalidTransition
		}
		return nil, fmt.Errorf("error updating service request status: %w", err)
	}

	return request, nil
}
