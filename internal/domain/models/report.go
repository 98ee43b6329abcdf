package models

import "time"

// ReportStatus is the review state of a lost/found report.
type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "PENDING"
	ReportStatusReviewed ReportStatus = "REVIEWED"
	ReportStatusResolved ReportStatus = "RESOLVED"
)

// ParseReportStatus validates a report status string.
func ParseReportStatus(s string) (ReportStatus, bool) {
	switch ReportStatus(s) {
	case ReportStatusPending, ReportStatusReviewed, ReportStatusResolved:
		return ReportStatus(s), true
	default:
		return "", false
	}
}

// Report is a lost/found dog report with attached photos.
type Report struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Name        string       `json:"name"`
	Phone       string       `json:"phone"`
	Description string       `gorm:"size:1000" json:"description"`
	Location    string       `json:"location"`
	Photos      StringList   `gorm:"type:text" json:"photos"`
	UserID      *uint        `gorm:"column:user_id;index" json:"userId"`
	Status      ReportStatus `gorm:"type:varchar(16);not null;default:'PENDING'" json:"status"`
	SubmittedAt time.Time    `gorm:"column:submitted_at" json:"submittedAt"`
}

// TableName sets the reports table name.
func (Report) TableName() string { return "reports" }
