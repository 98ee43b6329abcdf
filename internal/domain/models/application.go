package models

import "time"

// ApplicationType distinguishes adoption from purchase requests.
type ApplicationType string

const (
	ApplicationTypeAdoption ApplicationType = "ADOPTION"
	ApplicationTypePurchase ApplicationType = "PURCHASE"
)

// ParseApplicationType validates an application type string.
func ParseApplicationType(s string) (ApplicationType, bool) {
	switch ApplicationType(s) {
	case ApplicationTypeAdoption, ApplicationTypePurchase:
		return ApplicationType(s), true
	default:
		return "", false
	}
}

// ApplicationStatus is the review state of an application.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusApproved ApplicationStatus = "APPROVED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

// ParseApplicationStatus validates an application status string.
func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	switch ApplicationStatus(s) {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected:
		return ApplicationStatus(s), true
	default:
		return "", false
	}
}

// Application is an adoption or purchase application for a listed dog.
type Application struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	UserID      uint              `gorm:"column:user_id;not null;index" json:"userId"`
	DogID       uint              `gorm:"column:dog_id;not null;index" json:"dogId"`
	Type        ApplicationType   `gorm:"type:varchar(16);not null" json:"type"`
	FullName    string            `gorm:"column:full_name;not null" json:"fullName"`
	Email       string            `gorm:"not null" json:"email"`
	PhoneNumber string            `gorm:"column:phone_number;not null" json:"phoneNumber"`
	Address     string            `gorm:"not null" json:"address"`
	Message     string            `json:"message"`
	Status      ApplicationStatus `gorm:"type:varchar(16);not null;default:'PENDING'" json:"status"`
	AdminNotes  string            `gorm:"column:admin_notes" json:"adminNotes"`
	SubmittedAt time.Time         `gorm:"column:submitted_at" json:"submittedAt"`
	ProcessedAt *time.Time        `gorm:"column:processed_at" json:"processedAt"`
}

// TableName sets the applications table name.
func (Application) TableName() string { return "applications" }
