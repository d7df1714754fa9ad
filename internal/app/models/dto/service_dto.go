package dto

// CreateServiceRequest is the payload for listing a new service.
// The owning organization is always the authenticated actor; any
// client-supplied organization id is ignored.
type CreateServiceRequest struct {
	Title        string `json:"title" binding:"required" example:"Web Development Workshop"`
	Description  string `json:"description" binding:"required"`
	ServiceType  string `json:"serviceType" binding:"required" example:"Technical"`
	IsFree       *bool  `json:"isFree" binding:"required"`
	Price        *int   `json:"price,omitempty" binding:"omitempty,min=0"`
	Availability string `json:"availability" example:"Available on request"`
	Capacity     *int   `json:"capacity,omitempty" binding:"omitempty,min=1"`
}

// UpdateServiceRequest is a partial update; unset fields are left unchanged
type UpdateServiceRequest struct {
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	ServiceType  *string `json:"serviceType,omitempty"`
	IsFree       *bool   `json:"isFree,omitempty"`
	Price        *int    `json:"price,omitempty" binding:"omitempty,min=0"`
	Availability *string `json:"availability,omitempty"`
	Capacity     *int    `json:"capacity,omitempty" binding:"omitempty,min=1"`
	Status       *string `json:"status,omitempty" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

// ServiceFilter narrows the public service catalog
type ServiceFilter struct {
	ServiceType *string
	IsFree      *bool
	Search      *string
}
