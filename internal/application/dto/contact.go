package dto

// ContactMessageRequest is a contact-form submission. Works for both guests
// and signed-in users; the handler stamps the user when one is present.
type ContactMessageRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,max=1000"`
}

// ContactResponseRequest is the admin reply to a contact message.
type ContactResponseRequest struct {
	Response string `json:"response" binding:"required,max=2000"`
	Status   string `json:"status" binding:"omitempty"`
}

// ContactStatusUpdateRequest moves a message between workflow states without
// attaching a reply.
type ContactStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}
