package models

import (
	"time"

	"gorm.io/datatypes"
)

// Appointment statuses
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
)

// Appointment represents the appointments table
type Appointment struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	PatientID       uint           `gorm:"not null;index" json:"patientId"`
	DoctorID        uint           `gorm:"not null;index" json:"doctorId"`
	DoctorName      string         `gorm:"size:100;not null" json:"doctorName"`
	AppointmentDate datatypes.Date `gorm:"not null;index" json:"appointmentDate"`
	AppointmentTime string         `gorm:"size:20;not null" json:"appointmentTime"`
	Reason          string         `gorm:"type:text;not null" json:"reason"`
	Status          string         `gorm:"size:20;not null;default:pending;index" json:"status"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"-"`
}

// TableName specifies the table name for Appointment model
func (Appointment) TableName() string {
	return "appointments"
}

// ValidAppointmentStatus reports whether s is one of the known statuses.
func ValidAppointmentStatus(s string) bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCancelled:
		return true
	}
	return false
}
