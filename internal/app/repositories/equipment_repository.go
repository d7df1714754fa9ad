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

const equipmentColumns = "id, organization_id, name, description, image_url, status, available_until, deposit, conditions, created_at"

// equipmentRepository is the PostgreSQL implementation of EquipmentRepository
type equipmentRepository struct {
	db *pgxpool.Pool
}

// NewEquipmentRepository creates a new equipment repository
func NewEquipmentRepository(db *pgxpool.Pool) EquipmentRepository {
	return &equipmentRepository{db: db}
}

func scanEquipment(row pgx.Row) (*models.Equipment, error) {
	var equipment models.Equipment
	err := row.Scan(
		&equipment.ID,
		&equipment.OrganizationID,
		&equipment.Name,
		&equipment.Description,
		&equipment.ImageURL,
		&equipment.Status,
		&equipment.AvailableUntil,
		&equipment.Deposit,
		&equipment.Conditions,
		&equipment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &equipment, nil
}

// Create inserts a new equipment item
func (r *equipmentRepository) Create(ctx context.Context, equipment *models.Equipment) error {
	query := `
		INSERT INTO equipment (organization_id, name, description, image_url, status, available_until, deposit, conditions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		equipment.OrganizationID,
		equipment.Name,
		equipment.Description,
		equipment.ImageURL,
		equipment.Status,
		equipment.AvailableUntil,
		equipment.Deposit,
		equipment.Conditions,
	).Scan(&equipment.ID, &equipment.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating equipment: %w", err)
	}

	return nil
}

// GetByID retrieves an equipment item by ID
func (r *equipmentRepository) GetByID(ctx context.Context, id int64) (*models.Equipment, error) {
	query := fmt.Sprintf(`SELECT %s FROM equipment WHERE id = $1`, equipmentColumns)

	equipment, err := scanEquipment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving equipment: %w", err)
	}

	return equipment, nil
}

// GetAll retrieves the equipment catalog with optional filters
func (r *equipmentRepository) GetAll(ctx context.Context, filter *dto.EquipmentFilter) ([]*models.Equipment, error) {
	queryBuilder := squirrel.Select(
		"id", "organization_id", "name", "description", "image_url",
		"status", "available_until", "deposit", "conditions", "created_at",
	).
		From("equipment").
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar)

	if filter != nil {
		if filter.Status != nil {
			queryBuilder = queryBuilder.Where("status = ?", *filter.Status)
		}
		if filter.Search != nil {
			pattern := "%" + *filter.Search + "%"
			queryBuilder = queryBuilder.Where("(name ILIKE ? OR description ILIKE ?)", pattern, pattern)
		}
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building equipment query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEquipment(rows)
}

// GetByOrganization retrieves all equipment owned by an organization
func (r *equipmentRepository) GetByOrganization(ctx context.Context, organizationID int64) ([]*models.Equipment, error) {
	query := fmt.Sprintf(`SELECT %s FROM equipment WHERE organization_id = $1 ORDER BY id`, equipmentColumns)

	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEquipment(rows)
}

func collectEquipment(rows pgx.Rows) ([]*models.Equipment, error) {
	var items []*models.Equipment
	for rows.Next() {
		equipment, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, equipment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// Update applies a partial update to an equipment item. The owner-facing
// status change is guarded: it only applies while the item is not BORROWED,
// so an active borrowing can never be overwritten.
func (r *equipmentRepository) Update(ctx context.Context, id int64, upd *dto.UpdateEquipmentRequest) (*models.Equipment, error) {
	updateBuilder := squirrel.Update("equipment").
		Where("id = ?", id).
		Suffix("RETURNING " + equipmentColumns).
		PlaceholderFormat(squirrel.Dollar)

	changed := false
	if upd.Name != nil {
		updateBuilder = updateBuilder.Set("name", *upd.Name)
		changed = true
	}
	if upd.Description != nil {
		updateBuilder = updateBuilder.Set("description", *upd.Description)
		changed = true
	}
	if upd.ImageURL != nil {
		updateBuilder = updateBuilder.Set("image_url", *upd.ImageURL)
		changed = true
	}
	if upd.Status != nil {
		updateBuilder = updateBuilder.Set("status", *upd.Status)
		updateBuilder = updateBuilder.Where("status <> ?", models.EquipmentStatusBorrowed)
		changed = true
	}
	if upd.AvailableUntil != nil {
		updateBuilder = updateBuilder.Set("available_until", *upd.AvailableUntil)
		changed = true
	}
	if upd.Deposit != nil {
		updateBuilder = updateBuilder.Set("deposit", *upd.Deposit)
		changed = true
	}
	if upd.Conditions != nil {
		updateBuilder = updateBuilder.Set("conditions", *upd.Conditions)
		changed = true
	}

	if !changed {
		return r.GetByID(ctx, id)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building equipment update: %w", err)
	}

	equipment, err := scanEquipment(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the row is absent or the status guard filtered it out;
			// distinguish so the caller can report Conflict instead of 404.
			if upd.Status != nil {
				if _, getErr := r.GetByID(ctx, id); getErr == nil {
					return nil, apperrors.NewConflictError("equipment is currently borrowed")
				}
			}
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error updating equipment: %w", err)
	}

	return equipment, nil
}

// Delete removes an equipment item
func (r *equipmentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting equipment: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}
