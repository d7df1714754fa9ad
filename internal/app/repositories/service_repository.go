package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/burakuz/campushare/internal/app/models"
	"github.com/burakuz/campushare/internal/app/models/dto"
	"github.com/burakuz/campushare/internal/pkg/apperrors"
)

const serviceColumns = "id, organization_id, title, description, service_type, is_free, price, availability, capacity, status, created_at"

// serviceRepository is the PostgreSQL implementation of ServiceRepository
type serviceRepository struct {
	db *pgxpool.Pool
}

// NewServiceRepository creates a new service repository
func NewServiceRepository(db *pgxpool.Pool) ServiceRepository {
	return &serviceRepository{db: db}
}

func scanService(row pgx.Row) (*models.Service, error) {
	var service models.Service
	err := row.Scan(
		&service.ID,
		&service.OrganizationID,
		&service.Title,
		&service.Description,
		&service.ServiceType,
		&service.IsFree,
		&service.Price,
		&service.Availability,
		&service.Capacity,
		&service.Status,
		&service.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// Create inserts a new service listing
func (r *serviceRepository) Create(ctx context.Context, service *models.Service) error {
	query := `
		INSERT INTO services (organization_id, title, description, service_type, is_free, price, availability, capacity, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		service.OrganizationID,
		service.Title,
		service.Description,
		service.ServiceType,
		service.IsFree,
		service.Price,
		service.Availability,
		service.Capacity,
		service.Status,
	).Scan(&service.ID, &service.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating service: %w", err)
	}

	return nil
}

// GetByID retrieves a service by ID
func (r *serviceRepository) GetByID(ctx context.Context, id int64) (*models.Service, error) {
	query := fmt.Sprintf(`SELECT %s FROM services WHERE id = $1`, serviceColumns)

	service, err := scanService(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving service: %w", err)
	}

	return service, nil
}

// GetAll retrieves the service catalog with optional filters
func (r *serviceRepository) GetAll(ctx context.Context, filter *dto.ServiceFilter) ([]*models.Service, error) {
	queryBuilder := squirrel.Select(
		"id", "organization_id", "title", "description", "service_type",
		"is_free", "price", "availability", "capacity", "status", "created_at",
	).
		From("services").
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar)

	if filter != nil {
		if filter.ServiceType != nil {
			queryBuilder = queryBuilder.Where("service_type = ?", *filter.ServiceType)
		}
		if filter.IsFree != nil {
			queryBuilder = queryBuilder.Where("is_free = ?", *filter.IsFree)
		}
		if filter.Search != nil {
			pattern := "%" + *filter.Search + "%"
			queryBuilder = queryBuilder.Where("(title ILIKE ? OR description ILIKE ?)", pattern, pattern)
		}
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building service query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectServices(rows)
}

// GetByOrganization retrieves all services owned by an organization
func (r *serviceRepository) GetByOrganization(ctx context.Context, organizationID int64) ([]*models.Service, error) {
	query := fmt.Sprintf(`SELECT %s FROM services WHERE organization_id = $1 ORDER BY id`, serviceColumns)

	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectServices(rows)
}

func collectServices(rows pgx.Rows) ([]*models.Service, error) {
	var services []*models.Service
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return services, nil
}

// Update applies a partial update to a service; unset fields are unchanged
func (r *serviceRepository) Update(ctx context.Context, id int64, upd *dto.UpdateServiceRequest) (*models.Service, error) {
	updateBuilder := squirrel.Update("services").
		Where("id = ?", id).
		Suffix("RETURNING " + serviceColumns).
		PlaceholderFormat(squirrel.Dollar)

	changed := false
	if upd.Title != nil {
		updateBuilder = updateBuilder.Set("title", *upd.Title)
		changed = true
	}
	if upd.Description != nil {
		updateBuilder = updateBuilder.Set("description", *upd.Description)
		changed = true
	}
	if upd.ServiceType != nil {
		updateBuilder = updateBuilder.Set("service_type", *upd.ServiceType)
		changed = true
	}
	clearPrice := upd.IsFree != nil && *upd.IsFree
	if upd.IsFree != nil {
		updateBuilder = updateBuilder.Set("is_free", *upd.IsFree)
		// Turning free drops any stale price
		if clearPrice {
			updateBuilder = updateBuilder.Set("price", nil)
		}
		changed = true
	}
	if upd.Price != nil && !clearPrice {
		updateBuilder = updateBuilder.Set("price", *upd.Price)
		changed = true
	}
	if upd.Availability != nil {
		updateBuilder = updateBuilder.Set("availability", *upd.Availability)
		changed = true
	}
	if upd.Capacity != nil {
		updateBuilder = updateBuilder.Set("capacity", *upd.Capacity)
		changed = true
	}
	if upd.Status != nil {
		updateBuilder = updateBuilder.Set("status", *upd.Status)
		changed = true
	}

	if !changed {
		return r.GetByID(ctx, id)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building service update: %w", err)
	}

	service, err := scanService(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error updating service: %w", err)
	}

	return service, nil
}

// Delete removes a service listing
func (r *serviceRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting service: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}
