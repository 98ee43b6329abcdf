package models

import "time"

// SurrenderStatus is the review state of a surrender request.
type SurrenderStatus string

const (
	SurrenderStatusPending   SurrenderStatus = "PENDING"
	SurrenderStatusApproved  SurrenderStatus = "APPROVED"
	SurrenderStatusRejected  SurrenderStatus = "REJECTED"
	SurrenderStatusCompleted SurrenderStatus = "COMPLETED"
)

// ParseSurrenderStatus validates a surrender status string.
func ParseSurrenderStatus(s string) (SurrenderStatus, bool) {
	switch SurrenderStatus(s) {
	case SurrenderStatusPending, SurrenderStatusApproved, SurrenderStatusRejected, SurrenderStatusCompleted:
		return SurrenderStatus(s), true
	default:
		return "", false
	}
}

// SurrenderRequest is a dog-surrender submission from an owner, including
// contact details, dog details and medical history.
type SurrenderRequest struct {
	ID               uint            `gorm:"primaryKey" json:"surrenderId"`
	OwnerName        string          `gorm:"column:owner_name;not null" json:"ownerName"`
	OwnerPhone       string          `gorm:"column:owner_phone;not null" json:"ownerPhone"`
	OwnerEmail       string          `gorm:"column:owner_email;not null" json:"ownerEmail"`
	OwnerAddress     string          `gorm:"column:owner_address" json:"ownerAddress"`
	DogName          string          `gorm:"column:dog_name;not null" json:"dogName"`
	DogBreed         string          `gorm:"column:dog_breed" json:"dogBreed"`
	DogAge           int             `gorm:"column:dog_age" json:"dogAge"`
	DogGender        string          `gorm:"column:dog_gender" json:"dogGender"`
	DogSize          string          `gorm:"column:dog_size" json:"dogSize"`
	DogDescription   string          `gorm:"column:dog_description;size:2000" json:"dogDescription"`
	IsVaccinated     bool            `gorm:"column:is_vaccinated" json:"isVaccinated"`
	IsNeutered       bool            `gorm:"column:is_neutered" json:"isNeutered"`
	HasMedicalIssues bool            `gorm:"column:has_medical_issues" json:"hasMedicalIssues"`
	MedicalHistory   string          `gorm:"column:medical_history;size:1000" json:"medicalHistory"`
	SurrenderReason  string          `gorm:"column:surrender_reason;size:2000;not null" json:"surrenderReason"`
	IsUrgent         bool            `gorm:"column:is_urgent" json:"isUrgent"`
	PreferredDate    *time.Time      `gorm:"column:preferred_date" json:"preferredDate"`
	Status           SurrenderStatus `gorm:"column:request_status;type:varchar(16);not null;default:'PENDING'" json:"requestStatus"`
	AdminNotes       string          `gorm:"column:admin_notes;size:1000" json:"adminNotes"`
	UserID           *uint           `gorm:"column:user_id;index" json:"userId"`
	PhotoURLs        StringList      `gorm:"column:dog_photo_urls;type:text" json:"dogPhotoUrls"`
	SubmittedAt      time.Time       `gorm:"column:submission_date" json:"submissionDate"`
	UpdatedAt        time.Time       `gorm:"column:last_updated" json:"lastUpdated"`
}

// TableName sets the surrender_dogs table name.
func (SurrenderRequest) TableName() string { return "surrender_dogs" }
