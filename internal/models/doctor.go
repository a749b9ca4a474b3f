package models

import "time"

// Doctor is the referential entity that appointments and leave records
// point at, so a booking and a leave can never disagree on spelling.
type Doctor struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	FullName       string    `gorm:"size:100;uniqueIndex;not null" json:"fullName"`
	Specialization string    `gorm:"size:100" json:"specialization,omitempty"`
	IsActive       bool      `gorm:"default:true;index" json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "doctors"
}
