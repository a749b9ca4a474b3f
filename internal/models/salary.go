package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdminSalary represents the admin_salaries table
type AdminSalary struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	AdminName   string          `gorm:"size:100;not null;index" json:"adminName"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Month       int             `gorm:"not null" json:"month"`
	Year        int             `gorm:"not null;index" json:"year"`
	SubmittedBy string          `gorm:"size:100;not null" json:"submittedBy"`
	IsActive    bool            `gorm:"default:true;index" json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// TableName specifies the table name for AdminSalary model
func (AdminSalary) TableName() string {
	return "admin_salaries"
}
