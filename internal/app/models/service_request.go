package models

import "time"

// ServiceRequestStatus represents the lifecycle state of a service request
type ServiceRequestStatus string

const (
	ServiceRequestStatusPending   ServiceRequestStatus = "PENDING"
	ServiceRequestStatusAccepted  ServiceRequestStatus = "ACCEPTED"
	ServiceRequestStatusRejected  ServiceRequestStatus = "REJECTED"
	ServiceRequestStatusCompleted ServiceRequestStatus = "COMPLETED"
)

// ServiceRequest is an ask by one organization to use another's service.
// Only the owning organization drives transitions out of PENDING.
type ServiceRequest struct {
	ID            int64                `json:"id" db:"id"`
	ServiceID     int64                `json:"serviceId" db:"service_id"`
	RequesterID   int64                `json:"requesterId" db:"requester_id"`
	Status        ServiceRequestStatus `json:"status" db:"status"`
	Message       string               `json:"message" db:"message"`
	DateRequested *time.Time           `json:"dateRequested,omitempty" db:"date_requested"`
	CreatedAt     time.Time            `json:"createdAt" db:"created_at"`

	// Related entities
	Service   *Service      `json:"service,omitempty"`
	Requester *Organization `json:"requester,omitempty"`
}

// CanTransitionTo reports whether the request may move to the given status.
// PENDING may resolve to any of the three outcomes; an ACCEPTED request may
// still be COMPLETED. REJECTED and COMPLETED are terminal.
func (r *ServiceRequest) CanTransitionTo(next ServiceRequestStatus) bool {
	switch r.Status {
	case ServiceRequestStatusPending:
		return next == ServiceRequestStatusAccepted ||
			next == ServiceRequestStatusRejected ||
			next == ServiceRequestStatusCompleted
	case ServiceRequestStatusAccepted:
		return next == ServiceRequestStatusCompleted
	default:
		return false
	}
}
