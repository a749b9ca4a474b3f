package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/vital110/doctor-portal-backend/internal/models"
	"github.com/vital110/doctor-portal-backend/internal/repository"

	"gorm.io/datatypes"
)

type SettingsService struct {
	settingRepo *repository.SettingRepository
	auditRepo   *repository.AuditRepository
}

func NewSettingsService(settingRepo *repository.SettingRepository, auditRepo *repository.AuditRepository) *SettingsService {
	return &SettingsService{
		settingRepo: settingRepo,
		auditRepo:   auditRepo,
	}
}

// All returns every setting as a key to value map
func (s *SettingsService) All(ctx context.Context) (map[string]string, error) {
	settings, err := s.settingRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(settings))
	for _, setting := range settings {
		out[setting.SettingKey] = setting.SettingValue
	}
	return out, nil
}

// SetWorkingHours stores the working hours document as JSON text
func (s *SettingsService) SetWorkingHours(ctx context.Context, workingHours datatypes.JSON) error {
	if len(workingHours) == 0 || string(workingHours) == "null" {
		return invalid("workingHours is required")
	}
	if !json.Valid(workingHours) {
		return invalid("workingHours must be valid JSON")
	}
	return s.Set(ctx, models.SettingWorkingHours, string(workingHours))
}

// WorkingHours returns the stored working hours document, or nil when none
// has been saved
func (s *SettingsService) WorkingHours(ctx context.Context) (datatypes.JSON, error) {
	setting, err := s.settingRepo.Get(ctx, models.SettingWorkingHours)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return datatypes.JSON(setting.SettingValue), nil
}

// Set upserts a single setting
func (s *SettingsService) Set(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return invalid("setting key is required")
	}
	if len(key) > 100 {
		return invalid("setting key cannot exceed 100 characters")
	}
	if err := s.settingRepo.Upsert(ctx, key, value); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, "setting_update", fmt.Sprintf("Setting %s updated", key))
	return nil
}
