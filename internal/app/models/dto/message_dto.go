package dto

// SendMessageRequest is the payload for sending a direct message.
// The sender is always the authenticated actor.
type SendMessageRequest struct {
	ReceiverID int64  `json:"receiverId" binding:"required" example:"2"`
	Content    string `json:"content" binding:"required" example:"Is the camera free next weekend?"`
}

// UnreadCountResponse reports how many unread messages the actor has
type UnreadCountResponse struct {
	Count int `json:"count" example:"3"`
}

// DashboardStatsResponse summarizes an organization's activity
type DashboardStatsResponse struct {
	ActiveServices      int `json:"activeServices" example:"2"`
	EquipmentCount      int `json:"equipmentCount" example:"4"`
	AcceptedConnections int `json:"acceptedConnections" example:"7"`
	UnreadMessages      int `json:"unreadMessages" example:"3"`
}
