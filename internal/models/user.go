package models

import "time"

// Admin roles accepted at registration.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
	RoleManager    = "manager"
	RoleSupervisor = "supervisor"
)

// Admin represents the admins table
type Admin struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FullName     string    `gorm:"size:100;not null" json:"fullName"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password;size:255;not null" json:"-"`
	Role         string    `gorm:"size:20;not null;default:admin" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName specifies the table name for Admin model
func (Admin) TableName() string {
	return "admins"
}

// Patient represents the patients table
type Patient struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FullName     string    `gorm:"size:100;not null" json:"fullName"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password;size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}

// ValidAdminRole reports whether role is accepted at admin registration.
func ValidAdminRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSuperAdmin, RoleManager, RoleSupervisor:
		return true
	}
	return false
}
