package dto

import "time"

// CreateEquipmentRequest is the payload for listing a new equipment item
type CreateEquipmentRequest struct {
	Name           string     `json:"name" binding:"required" example:"DSLR Camera"`
	Description    string     `json:"description" binding:"required"`
	ImageURL       string     `json:"imageUrl" example:"https://example.com/camera.jpg"`
	AvailableUntil *time.Time `json:"availableUntil,omitempty"`
	Deposit        *int       `json:"deposit,omitempty" binding:"omitempty,min=0"`
	Conditions     *string    `json:"conditions,omitempty"`
}

// UpdateEquipmentRequest is a partial update; unset fields are left unchanged.
// Status may only be switched between AVAILABLE and MAINTENANCE by the owner;
// BORROWED is reserved for borrowing transitions.
type UpdateEquipmentRequest struct {
	Name           *string    `json:"name,omitempty"`
	Description    *string    `json:"description,omitempty"`
	ImageURL       *string    `json:"imageUrl,omitempty"`
	Status         *string    `json:"status,omitempty" binding:"omitempty,oneof=AVAILABLE MAINTENANCE"`
	AvailableUntil *time.Time `json:"availableUntil,omitempty"`
	Deposit        *int       `json:"deposit,omitempty" binding:"omitempty,min=0"`
	Conditions     *string    `json:"conditions,omitempty"`
}

// EquipmentFilter narrows the public equipment catalog
type EquipmentFilter struct {
	Status *string
	Search *string
}
