package dto

import "time"

// SurrenderSubmission is the JSON part of a multipart surrender request.
// Dog photos travel as separate file parts.
type SurrenderSubmission struct {
	OwnerName        string     `json:"ownerName" binding:"required,max=100"`
	OwnerPhone       string     `json:"ownerPhone" binding:"required,max=30"`
	OwnerEmail       string     `json:"ownerEmail" binding:"required,email"`
	OwnerAddress     string     `json:"ownerAddress" binding:"max=300"`
	DogName          string     `json:"dogName" binding:"required,max=100"`
	DogBreed         string     `json:"dogBreed" binding:"max=100"`
	DogAge           int        `json:"dogAge" binding:"gte=0,lte=30"`
	DogGender        string     `json:"dogGender" binding:"max=20"`
	DogSize          string     `json:"dogSize" binding:"max=20"`
	DogDescription   string     `json:"dogDescription" binding:"max=2000"`
	IsVaccinated     bool       `json:"isVaccinated"`
	IsNeutered       bool       `json:"isNeutered"`
	HasMedicalIssues bool       `json:"hasMedicalIssues"`
	MedicalHistory   string     `json:"medicalHistory" binding:"max=1000"`
	SurrenderReason  string     `json:"surrenderReason" binding:"required,max=2000"`
	IsUrgent         bool       `json:"isUrgent"`
	PreferredDate    *time.Time `json:"preferredDate"`
}

// SurrenderStatusUpdateRequest is the admin review decision.
type SurrenderStatusUpdateRequest struct {
	Status     string `json:"status" binding:"required"`
	AdminNotes string `json:"adminNotes" binding:"max=1000"`
}
