package dto

// ApplicationRequest submits an adoption or purchase application for a dog.
type ApplicationRequest struct {
	DogID       uint   `json:"dogId" binding:"required"`
	Type        string `json:"type" binding:"required"`
	FullName    string `json:"fullName" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required,max=30"`
	Address     string `json:"address" binding:"required,max=300"`
	Message     string `json:"message" binding:"max=2000"`
}

// ApplicationStatusUpdateRequest is the admin review decision.
type ApplicationStatusUpdateRequest struct {
	Status     string `json:"status" binding:"required"`
	AdminNotes string `json:"adminNotes" binding:"max=1000"`
}
