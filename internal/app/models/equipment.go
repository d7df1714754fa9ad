package models

import "time"

// EquipmentStatus represents the availability state of an equipment item.
// BORROWED is only ever set by borrowing transitions, never directly by the
// owner while a borrow is active.
type EquipmentStatus string

const (
	EquipmentStatusAvailable   EquipmentStatus = "AVAILABLE"
	EquipmentStatusBorrowed    EquipmentStatus = "BORROWED"
	EquipmentStatusMaintenance EquipmentStatus = "MAINTENANCE"
)

// Equipment represents a physical item an organization lends out
type Equipment struct {
	ID             int64           `json:"id" db:"id"`
	OrganizationID int64           `json:"organizationId" db:"organization_id"`
	Name           string          `json:"name" db:"name"`
	Description    string          `json:"description" db:"description"`
	ImageURL       string          `json:"imageUrl" db:"image_url"`
	Status         EquipmentStatus `json:"status" db:"status"`
	AvailableUntil *time.Time      `json:"availableUntil,omitempty" db:"available_until"`
	Deposit        *int            `json:"deposit,omitempty" db:"deposit"`
	Conditions     *string         `json:"conditions,omitempty" db:"conditions"`
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`

	// Related entities
	Organization *Organization `json:"organization,omitempty"`
}
