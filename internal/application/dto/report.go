package dto

// ReportRequest is the JSON part of a multipart lost/found report
// submission. Photos travel as separate file parts.
type ReportRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Phone       string `json:"phone" binding:"required,max=30"`
	Description string `json:"description" binding:"required,max=1000"`
	Location    string `json:"location" binding:"required,max=300"`
}

// ReportStatusUpdateRequest is the admin review decision.
type ReportStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}
