package dto

import "time"

// CreateServiceRequestRequest is the payload for requesting a service.
// The requester is always the authenticated actor; the service comes from
// the route.
type CreateServiceRequestRequest struct {
	Message       string     `json:"message" example:"We need this for our Friday event"`
	DateRequested *time.Time `json:"dateRequested,omitempty"`
}

// UpdateServiceRequestStatusRequest transitions a service request.
// Only the service owner may transition it.
type UpdateServiceRequestStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACCEPTED REJECTED COMPLETED"`
}

// CreateBorrowingRequest is the payload for requesting to borrow equipment
type CreateBorrowingRequest struct {
	Message     string     `json:"message" example:"Needed for our photography workshop"`
	BorrowFrom  *time.Time `json:"borrowFrom,omitempty"`
	BorrowUntil *time.Time `json:"borrowUntil,omitempty"`
}

// UpdateBorrowingStatusRequest transitions a borrowing.
// Only the equipment owner may transition it.
type UpdateBorrowingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=APPROVED REJECTED RETURNED"`
}
