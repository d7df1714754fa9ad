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

const borrowingColumns = "id, equipment_id, borrower_id, status, message, borrow_from, borrow_until, created_at"

// equipmentBorrowingRepository is the PostgreSQL implementation of EquipmentBorrowingRepository
type equipmentBorrowingRepository struct {
	db *pgxpool.Pool
}

// NewEquipmentBorrowingRepository creates a new equipment borrowing repository
func NewEquipmentBorrowingRepository(db *pgxpool.Pool) EquipmentBorrowingRepository {
	return &equipmentBorrowingRepository{db: db}
}

func scanBorrowing(row pgx.Row) (*models.EquipmentBorrowing, error) {
	var borrowing models.EquipmentBorrowing
	err := row.Scan(
		&borrowing.ID,
		&borrowing.EquipmentID,
		&borrowing.BorrowerID,
		&borrowing.Status,
		&borrowing.Message,
		&borrowing.BorrowFrom,
		&borrowing.BorrowUntil,
		&borrowing.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &borrowing, nil
}

func collectBorrowings(rows pgx.Rows) ([]*models.EquipmentBorrowing, error) {
	var borrowings []*models.EquipmentBorrowing
	for rows.Next() {
		borrowing, err := scanBorrowing(rows)
		if err != nil {
			return nil, err
		}
		borrowings = append(borrowings, borrowing)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return borrowings, nil
}

// Create inserts a new pending borrowing request
func (r *equipmentBorrowingRepository) Create(ctx context.Context, borrowing *models.EquipmentBorrowing) error {
	query := `
		INSERT INTO equipment_borrowings (equipment_id, borrower_id, status, message, borrow_from, borrow_until)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		borrowing.EquipmentID,
		borrowing.BorrowerID,
		borrowing.Status,
		borrowing.Message,
		borrowing.BorrowFrom,
		borrowing.BorrowUntil,
	).Scan(&borrowing.ID, &borrowing.CreatedAt)

	if err != nil {
		// The equipment may have been deleted since it was looked up
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("error creating borrowing request: %w", err)
	}

	return nil
}

// GetByID retrieves a borrowing request by ID
func (r *equipmentBorrowingRepository) GetByID(ctx context.Context, id int64) (*models.EquipmentBorrowing, error) {
	query := fmt.Sprintf(`SELECT %s FROM equipment_borrowings WHERE id = $1`, borrowingColumns)

	borrowing, err := scanBorrowing(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving borrowing request: %w", err)
	}

	return borrowing, nil
}

// GetByEquipment retrieves all borrowing requests for an equipment item
func (r *equipmentBorrowingRepository) GetByEquipment(ctx context.Context, equipmentID int64) ([]*models.EquipmentBorrowing, error) {
	query := fmt.Sprintf(`SELECT %s FROM equipment_borrowings WHERE equipment_id = $1 ORDER BY id`, borrowingColumns)

	rows, err := r.db.Query(ctx, query, equipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBorrowings(rows)
}

// GetByOrganization retrieves borrowings relevant to an organization: requests
// it submitted plus requests received against equipment it owns
func (r *equipmentBorrowingRepository) GetByOrganization(ctx context.Context, organizationID int64) ([]*models.EquipmentBorrowing, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM equipment_borrowings
		WHERE borrower_id = $1
		   OR equipment_id IN (SELECT id FROM equipment WHERE organization_id = $1)
		ORDER BY id
	`, borrowingColumns)

	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBorrowings(rows)
}

// Approve moves a pending borrowing to APPROVED and flips the equipment to
// BORROWED in one transaction. Conditional WHERE clauses make the operation
// safe under concurrent approvals: only one of two racing requests can see
// the equipment AVAILABLE.
func (r *equipmentBorrowingRepository) Approve(ctx context.Context, id int64) (*models.EquipmentBorrowing, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error starting approval transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	updateQuery := fmt.Sprintf(`
		UPDATE equipment_borrowings SET status = $1
		WHERE id = $2 AND status = $3
		RETURNING %s
	`, borrowingColumns)

	borrowing, err := scanBorrowing(tx.QueryRow(ctx, updateQuery,
		models.BorrowingStatusApproved, id, models.BorrowingStatusPending))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, apperrors.ErrInvalidTransition
		}
		return nil, fmt.Errorf("error approving borrowing: %w", err)
	}

	result, err := tx.Exec(ctx, `
		UPDATE equipment SET status = $1
		WHERE id = $2 AND status = $3
	`, models.EquipmentStatusBorrowed, borrowing.EquipmentID, models.EquipmentStatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("error marking equipment borrowed: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, apperrors.ErrEquipmentUnavailable
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("error committing approval: %w", err)
	}

	return borrowing, nil
}

// Return moves an approved borrowing to RETURNED and restores the equipment
// to AVAILABLE in one transaction.
func (r *equipmentBorrowingRepository) Return(ctx context.Context, id int64) (*models.EquipmentBorrowing, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error starting return transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	updateQuery := fmt.Sprintf(`
		UPDATE equipment_borrowings SET status = $1
		WHERE id = $2 AND status = $3
		RETURNING %s
	`, borrowingColumns)

	borrowing, err := scanBorrowing(tx.QueryRow(ctx, updateQuery,
		models.BorrowingStatusReturned, id, models.BorrowingStatusApproved))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, apperrors.ErrInvalidTransition
		}
		return nil, fmt.Errorf("error returning borrowing: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE equipment SET status = $1
		WHERE id = $2 AND status = $3
	`, models.EquipmentStatusAvailable, borrowing.EquipmentID, models.EquipmentStatusBorrowed)
	if err != nil {
		return nil, fmt.Errorf("error restoring equipment availability: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("error committing return: %w", err)
	}

	return borrowing, nil
}

// Reject moves a pending borrowing to REJECTED. Rejection never touches the
// equipment row.
func (r *equipmentBorrowingRepository) Reject(ctx context.Context, id int64) (*models.EquipmentBorrowing, error) {
	query := fmt.Sprintf(`
		UPDATE equipment_borrowings SET status = $1
		WHERE id = $2 AND status = $3
		RETURNING %s
	`, borrowingColumns)

	borrowing, err := scanBorrowing(r.db.QueryRow(ctx, query,
		models.BorrowingStatusRejected, id, models.BorrowingStatusPending))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, apperrors.ErrInvalidTransition
		}
		return nil, fmt.Errorf("error rejecting borrowing: %w", err)
	}

	return borrowing, nil
}
