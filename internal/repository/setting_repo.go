package repository

import (
	"context"

	"github.com/vital110/doctor-portal-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepo(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// All returns every stored setting
func (r *SettingRepository) All(ctx context.Context) ([]models.ClinicSetting, error) {
	var settings []models.ClinicSetting
	err := r.db.WithContext(ctx).Order("setting_key ASC").Find(&settings).Error
	return settings, err
}

// Get returns a single setting by key
func (r *SettingRepository) Get(ctx context.Context, key string) (*models.ClinicSetting, error) {
	var setting models.ClinicSetting
	if err := r.db.WithContext(ctx).Where("setting_key = ?", key).First(&setting).Error; err != nil {
		return nil, translate(err)
	}
	return &setting, nil
}

// Upsert inserts the setting or replaces the value stored under its key
func (r *SettingRepository) Upsert(ctx context.Context, key, value string) error {
	setting := &models.ClinicSetting{SettingKey: key, SettingValue: value}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
	}).Create(setting).Error
}
