package dto

// DogRequest creates or replaces a dog listing.
type DogRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Breed       string  `json:"breed" binding:"max=100"`
	Description string  `json:"description" binding:"max=2000"`
	Price       float64 `json:"price" binding:"gte=0"`
	Status      string  `json:"status" binding:"omitempty"`
	IsStray     bool    `json:"isStray"`
	Image       string  `json:"image" binding:"max=500"`
}

// DogStatusUpdateRequest changes only the listing status.
type DogStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}
