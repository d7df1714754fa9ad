package models

import "time"

// ServiceStatus represents the listing state of a service
type ServiceStatus string

const (
	ServiceStatusActive   ServiceStatus = "ACTIVE"
	ServiceStatusInactive ServiceStatus = "INACTIVE"
)

// Service represents a service offered by an organization, such as a workshop
// or a consultation. Free services carry no price; paid ones may.
type Service struct {
	ID             int64         `json:"id" db:"id"`
	OrganizationID int64         `json:"organizationId" db:"organization_id"`
	Title          string        `json:"title" db:"title"`
	Description    string        `json:"description" db:"description"`
	ServiceType    string        `json:"serviceType" db:"service_type"`
	IsFree         bool          `json:"isFree" db:"is_free"`
	Price          *int          `json:"price,omitempty" db:"price"`
	Availability   string        `json:"availability" db:"availability"`
	Capacity       *int          `json:"capacity,omitempty" db:"capacity"`
	Status         ServiceStatus `json:"status" db:"status"`
	CreatedAt      time.Time     `json:"createdAt" db:"created_at"`

	// Related entities
	Organization *Organization `json:"organization,omitempty"`
}
