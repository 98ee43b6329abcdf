package models

import "time"

// DogStatus is the dog listing lifecycle state.
type DogStatus string

const (
	DogStatusAvailable DogStatus = "AVAILABLE"
	DogStatusPending   DogStatus = "PENDING"
	DogStatusAdopted   DogStatus = "ADOPTED"
	DogStatusSold      DogStatus = "SOLD"
)

// ParseDogStatus validates a status string from a request path or body.
func ParseDogStatus(s string) (DogStatus, bool) {
	switch DogStatus(s) {
	case DogStatusAvailable, DogStatusPending, DogStatusAdopted, DogStatusSold:
		return DogStatus(s), true
	default:
		return "", false
	}
}

// Dog is a listing row. Stray dogs are offered for adoption; non-stray dogs
// are offered for sale at Price.
type Dog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Breed       string    `json:"breed"`
	Description string    `json:"description"`
	Price       float64   `gorm:"type:numeric(10,2);default:0" json:"price"`
	Status      DogStatus `gorm:"type:varchar(16);not null;default:'AVAILABLE'" json:"status"`
	IsStray     bool      `gorm:"column:is_stray;default:false" json:"isStray"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName sets the dogs table name.
func (Dog) TableName() string { return "dogs" }
