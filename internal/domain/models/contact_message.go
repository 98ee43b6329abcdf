package models

import "time"

// ContactMessageStatus is the handling state of a contact message.
type ContactMessageStatus string

const (
	ContactMessageStatusPending    ContactMessageStatus = "PENDING"
	ContactMessageStatusInProgress ContactMessageStatus = "IN_PROGRESS"
	ContactMessageStatusResponded  ContactMessageStatus = "RESPONDED"
	ContactMessageStatusClosed     ContactMessageStatus = "CLOSED"
)

// ParseContactMessageStatus validates a contact message status string.
func ParseContactMessageStatus(s string) (ContactMessageStatus, bool) {
	switch ContactMessageStatus(s) {
	case ContactMessageStatusPending, ContactMessageStatusInProgress,
		ContactMessageStatusResponded, ContactMessageStatusClosed:
		return ContactMessageStatus(s), true
	default:
		return "", false
	}
}

// ContactMessage is a message submitted through the contact form. UserID is
// nil for guest submissions; ownership checks only apply to messages with a
// stamped user.
type ContactMessage struct {
	ID            uint                 `gorm:"primaryKey" json:"id"`
	UserID        *uint                `gorm:"column:user_id;index" json:"userId"`
	Name          string               `gorm:"not null;size:100" json:"name"`
	Email         string               `gorm:"not null;size:100" json:"email"`
	Message       string               `gorm:"not null;size:1000" json:"message"`
	Status        ContactMessageStatus `gorm:"type:varchar(16);not null;default:'PENDING'" json:"status"`
	AdminResponse string               `gorm:"column:admin_response" json:"adminResponse"`
	SubmittedAt   time.Time            `gorm:"column:submitted_at;not null" json:"submittedAt"`
	RespondedAt   *time.Time           `gorm:"column:responded_at" json:"respondedAt"`
}

// TableName sets the contact_messages table name.
func (ContactMessage) TableName() string { return "contact_messages" }
