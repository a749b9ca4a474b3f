package models

import "time"

// Known setting keys
const (
	SettingWorkingHours = "working_hours"
)

// ClinicSetting represents the clinic_settings table
// A key/value store; structured values are stored as JSON text
type ClinicSetting struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SettingKey   string    `gorm:"size:100;uniqueIndex;not null" json:"settingKey"`
	SettingValue string    `gorm:"type:text;not null" json:"settingValue"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName specifies the table name for ClinicSetting model
func (ClinicSetting) TableName() string {
	return "clinic_settings"
}
