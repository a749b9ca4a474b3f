package models

import "time"

// Medical record types
const (
	RecordPrescription = "prescription"
	RecordTestReport   = "test_report"
	RecordDiagnosis    = "diagnosis"
	RecordOther        = "other"
)

// MedicalRecord represents the medical_records table
// Metadata of an uploaded document; the file itself lives on disk at FilePath
type MedicalRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PatientID   uint      `gorm:"not null;index" json:"patientId"`
	RecordType  string    `gorm:"size:20;not null" json:"recordType"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	FileName    string    `gorm:"size:255;not null" json:"fileName"`
	FilePath    string    `gorm:"size:500;not null" json:"-"` // Hidden from JSON, server-side path
	FileSize    int64     `gorm:"not null" json:"fileSize"`
	UploadedBy  string    `gorm:"size:100;not null" json:"uploadedBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for MedicalRecord model
func (MedicalRecord) TableName() string {
	return "medical_records"
}
