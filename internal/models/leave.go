package models

import (
	"time"

	"gorm.io/datatypes"
)

// Admin leave statuses
const (
	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveRejected = "rejected"
)

// DoctorLeave represents the doctor_leaves table
// Removing a leave flips IsActive; rows are never deleted
type DoctorLeave struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	DoctorID   uint           `gorm:"not null;index:idx_doctor_leave_date" json:"doctorId"`
	DoctorName string         `gorm:"size:100;not null" json:"doctorName"`
	LeaveDate  datatypes.Date `gorm:"not null;index:idx_doctor_leave_date" json:"leaveDate"`
	Reason     string         `gorm:"size:255;not null" json:"reason"`
	IsActive   bool           `gorm:"default:true;index" json:"isActive"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`

	// Relationships
	Doctor *Doctor `gorm:"foreignKey:DoctorID" json:"-"`
}

// TableName specifies the table name for DoctorLeave model
func (DoctorLeave) TableName() string {
	return "doctor_leaves"
}

// Holiday represents the holidays table
type Holiday struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Date      datatypes.Date `gorm:"not null;index" json:"date"`
	Reason    string         `gorm:"size:255;not null" json:"reason"`
	IsActive  bool           `gorm:"default:true;index" json:"isActive"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// TableName specifies the table name for Holiday model
func (Holiday) TableName() string {
	return "holidays"
}

// AdminLeave represents the admin_leaves table
type AdminLeave struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	AdminName string         `gorm:"size:100;not null" json:"adminName"`
	LeaveDate datatypes.Date `gorm:"not null" json:"leaveDate"`
	Reason    string         `gorm:"type:text;not null" json:"reason"`
	Status    string         `gorm:"size:20;not null;default:pending" json:"status"`
	IsActive  bool           `gorm:"default:true;index" json:"isActive"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// TableName specifies the table name for AdminLeave model
func (AdminLeave) TableName() string {
	return "admin_leaves"
}
