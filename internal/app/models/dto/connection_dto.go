package dto

// CreateConnectionRequest is the payload for requesting a new connection.
// The requester is always the authenticated actor.
type CreateConnectionRequest struct {
	ReceiverID int64   `json:"receiverId" binding:"required" example:"2"`
	Message    *string `json:"message,omitempty" example:"We collaborated at the spring fair, let's connect."`
}

// UpdateConnectionStatusRequest resolves a pending connection.
// Only the receiving organization may resolve it.
type UpdateConnectionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACCEPTED REJECTED"`
}
