package models

import "time"

// Message is a direct message between two distinct organizations.
// A conversation is the full set of messages between a pair in either
// direction, ordered by creation time ascending.
type Message struct {
	ID         int64     `json:"id" db:"id"`
	SenderID   int64     `json:"senderId" db:"sender_id"`
	ReceiverID int64     `json:"receiverId" db:"receiver_id"`
	Content    string    `json:"content" db:"content"`
	Read       bool      `json:"read" db:"read"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`

	// Related entities
	Sender   *Organization `json:"sender,omitempty"`
	Receiver *Organization `json:"receiver,omitempty"`
}
