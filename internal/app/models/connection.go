package models

import "time"

// ConnectionStatus represents the lifecycle state of a connection.
// PENDING is the only initial state; ACCEPTED and REJECTED are terminal.
type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "PENDING"
	ConnectionStatusAccepted ConnectionStatus = "ACCEPTED"
	ConnectionStatusRejected ConnectionStatus = "REJECTED"
)

// Connection is a mutual-acknowledgment relationship between two distinct
// organizations. At most one connection record exists per unordered pair.
type Connection struct {
	ID          int64            `json:"id" db:"id"`
	RequesterID int64            `json:"requesterId" db:"requester_id"`
	ReceiverID  int64            `json:"receiverId" db:"receiver_id"`
	Status      ConnectionStatus `json:"status" db:"status"`
	Message     *string          `json:"message,omitempty" db:"message"`
	CreatedAt   time.Time        `json:"createdAt" db:"created_at"`

	// Related entities
	Requester *Organization `json:"requester,omitempty"`
	Receiver  *Organization `json:"receiver,omitempty"`
}

// CanTransitionTo reports whether the connection may move to the given status.
// Resolved connections are terminal.
func (c *Connection) CanTransitionTo(next ConnectionStatus) bool {
	if c.Status != ConnectionStatusPending {
		return false
	}
	return next == ConnectionStatusAccepted || next == ConnectionStatusRejected
}
