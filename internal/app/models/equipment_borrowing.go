package models

import "time"

// BorrowingStatus represents the lifecycle state of an equipment borrowing
type BorrowingStatus string

const (
	BorrowingStatusPending  BorrowingStatus = "PENDING"
	BorrowingStatusApproved BorrowingStatus = "APPROVED"
	BorrowingStatusRejected BorrowingStatus = "REJECTED"
	BorrowingStatusReturned BorrowingStatus = "RETURNED"
)

// EquipmentBorrowing is an ask by one organization to borrow another's
// equipment. Approval marks the equipment BORROWED; returning it restores
// AVAILABLE. Both flips happen atomically with the status change.
type EquipmentBorrowing struct {
	ID          int64           `json:"id" db:"id"`
	EquipmentID int64           `json:"equipmentId" db:"equipment_id"`
	BorrowerID  int64           `json:"borrowerId" db:"borrower_id"`
	Status      BorrowingStatus `json:"status" db:"status"`
	Message     string          `json:"message" db:"message"`
	BorrowFrom  *time.Time      `json:"borrowFrom,omitempty" db:"borrow_from"`
	BorrowUntil *time.Time      `json:"borrowUntil,omitempty" db:"borrow_until"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`

	// Related entities
	Equipment *Equipment    `json:"equipment,omitempty"`
	Borrower  *Organization `json:"borrower,omitempty"`
}

// CanTransitionTo reports whether the borrowing may move to the given status.
func (b *EquipmentBorrowing) CanTransitionTo(next BorrowingStatus) bool {
	switch b.Status {
	case BorrowingStatusPending:
		return next == BorrowingStatusApproved || next == BorrowingStatusRejected
	case BorrowingStatusApproved:
		return next == BorrowingStatusReturned
	default:
		return false
	}
}
