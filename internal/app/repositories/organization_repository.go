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

// organizationRepository is the PostgreSQL implementation of OrganizationRepository
type organizationRepository struct {
	db *pgxpool.Pool
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *pgxpool.Pool) OrganizationRepository {
	return &organizationRepository{db: db}
}

// Create inserts a new organization account
func (r *organizationRepository) Create(ctx context.Context, org *models.Organization) error {
	query := `
		INSERT INTO organizations (name, username, password_hash, description, email, avatar)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		org.Name,
		org.Username,
		org.PasswordHash,
		org.Description,
		org.Email,
		org.Avatar,
	).Scan(&org.ID, &org.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "organizations_username_key") {
			return apperrors.ErrUsernameAlreadyExists
		}
		return fmt.Errorf("error creating organization: %w", err)
	}

	return nil
}

// GetByID retrieves an organization by ID
func (r *organizationRepository) GetByID(ctx context.Context, id int64) (*models.Organization, error) {
	query := `
		SELECT id, name, username, password_hash, description, email, avatar, created_at
		FROM organizations
		WHERE id = $1
	`

	var org models.Organization
	err := r.db.QueryRow(ctx, query, id).Scan(
		&org.ID,
		&org.Name,
		&org.Username,
		&org.PasswordHash,
		&org.Description,
		&org.Email,
		&org.Avatar,
		&org.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("error retrieving organization: %w", err)
	}

	return &org, nil
}

// GetByUsername retrieves an organization by its unique username
func (r *organizationRepository) GetByUsername(ctx context.Context, username string) (*models.Organization, error) {
	query := `
		SELECT id, name, username, password_hash, description, email, avatar, created_at
		FROM organizations
		WHERE username = $1
	`

	var org models.Organization
	err := r.db.QueryRow(ctx, query, username).Scan(
		&org.ID,
		&org.Name,
		&org.Username,
		&org.PasswordHash,
		&org.Description,
		&org.Email,
		&org.Avatar,
		&org.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("error retrieving organization by username: %w", err)
	}

	return &org, nil
}

// GetAll retrieves every registered organization
func (r *organizationRepository) GetAll(ctx context.Context) ([]*models.Organization, error) {
	query := `
		SELECT id, name, username, password_hash, description, email, avatar, created_at
		FROM organizations
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var organizations []*models.Organization
	for rows.Next() {
		var org models.Organization
		if err := rows.Scan(
			&org.ID,
			&org.Name,
			&org.Username,
			&org.PasswordHash,
			&org.Description,
			&org.Email,
			&org.Avatar,
			&org.CreatedAt,
		); err != nil {
			return nil, err
		}
		organizations = append(organizations, &org)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return organizations, nil
}
